package cart_test

import (
	"testing"

	"github.com/SergeyBogomolovv/royal-shop/internal/cart"
	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64, stock int) entities.Product {
	return entities.Product{ID: id, Name: id, Price: decimal.NewFromInt(price), Stock: stock}
}

func TestCart_Add(t *testing.T) {
	testCases := []struct {
		name         string
		adds         []entities.Product
		wantOutcomes []entities.Outcome
		wantQty      int
	}{
		{
			name:         "new item gets quantity 1",
			adds:         []entities.Product{product("a", 10, 3)},
			wantOutcomes: []entities.Outcome{entities.OutcomeApplied},
			wantQty:      1,
		},
		{
			name:         "out of stock is ignored",
			adds:         []entities.Product{product("a", 10, 0)},
			wantOutcomes: []entities.Outcome{entities.OutcomeIgnoredOutOfStock},
			wantQty:      0,
		},
		{
			name:         "negative stock is ignored",
			adds:         []entities.Product{product("a", 10, -1)},
			wantOutcomes: []entities.Outcome{entities.OutcomeIgnoredOutOfStock},
			wantQty:      0,
		},
		{
			name:         "stock 1 added twice stays at 1",
			adds:         []entities.Product{product("a", 10, 1), product("a", 10, 1)},
			wantOutcomes: []entities.Outcome{entities.OutcomeApplied, entities.OutcomeIgnoredStockCeiling},
			wantQty:      1,
		},
		{
			name: "ceiling uses stock passed on each call",
			adds: []entities.Product{product("a", 10, 5), product("a", 10, 5), product("a", 10, 2)},
			wantOutcomes: []entities.Outcome{
				entities.OutcomeApplied, entities.OutcomeApplied, entities.OutcomeIgnoredStockCeiling,
			},
			wantQty: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := cart.New()
			for i, p := range tc.adds {
				assert.Equal(t, tc.wantOutcomes[i], c.Add(p), "add #%d", i)
			}
			assert.Equal(t, tc.wantQty, c.Quantity("a"))
		})
	}
}

func TestCart_NeverExceedsStock(t *testing.T) {
	c := cart.New()
	item := product("a", 10, 4)
	for range 20 {
		c.Add(item)
		assert.LessOrEqual(t, c.Quantity("a"), item.Stock)
	}
	assert.Equal(t, 4, c.Quantity("a"))
}

func TestCart_RemoveKeepsOrder(t *testing.T) {
	c := cart.New()
	c.Add(product("a", 10, 5))
	c.Add(product("b", 20, 5))
	c.Add(product("c", 30, 5))

	assert.Equal(t, entities.OutcomeApplied, c.Remove("b"))
	assert.Equal(t, entities.OutcomeIgnoredUnknownID, c.Remove("b"))

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ID)
	assert.Equal(t, "c", lines[1].ID)

	c.Add(product("c", 30, 5))
	assert.Equal(t, 2, c.Quantity("c"))
}

func TestCart_TotalAndClear(t *testing.T) {
	c := cart.New()
	c.Add(product("a", 10, 5))
	c.Add(product("a", 10, 5))
	c.Add(product("b", 25, 5))

	assert.True(t, decimal.NewFromInt(45).Equal(c.Total()))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Lines())
	assert.True(t, c.Total().IsZero())
}
