package cache

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string], clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "ORD-1")
				if v, ok := c.Get("a"); !ok || v != "ORD-1" {
					t.Errorf("expected value=ORD-1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "ORD-1")
				clock.advance(time.Millisecond * 60)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Set("c", "3")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("b"); !ok || v != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "1")
				clock.advance(time.Millisecond * 30)
				c.Set("a", "2")
				clock.advance(time.Millisecond * 30)
				if v, ok := c.Get("a"); !ok || v != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be deleted")
				}
				if c.Size() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Size())
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Millisecond * 50,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "1")
				clock.advance(time.Millisecond * 30)
				c.Set("b", "2")
				clock.advance(time.Millisecond * 30)

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected only 'b' to survive, size=%d", c.Size())
				}
				if _, ok := c.Get("b"); !ok {
					t.Errorf("expected 'b' to survive cleanup")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
			c := NewLRUCache[string](tt.capacity, tt.ttl)
			c.now = clock.now
			tt.actions(c, clock, t)
		})
	}
}
