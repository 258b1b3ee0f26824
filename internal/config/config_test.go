package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	conf := New()

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "sqlite", conf.Storage.Driver)
	assert.Equal(t, "royal_orders", conf.Storage.Key)
	assert.Equal(t, 500*time.Millisecond, conf.Notifier.Latency)
	assert.Equal(t, 220, conf.Catalog.Size)
	require.NoError(t, conf.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("NOTIFIER_LATENCY", "0s")
	t.Setenv("CATALOG_SIZE", "not-a-number")

	conf := New()

	assert.Equal(t, "redis", conf.Storage.Driver)
	assert.Equal(t, "cache:6380", conf.Storage.Redis.Addr)
	assert.True(t, conf.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Kafka.Brokers)
	assert.Zero(t, conf.Notifier.Latency)
	assert.Equal(t, 220, conf.Catalog.Size, "invalid value falls back to default")
	require.NoError(t, conf.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "valid", modify: func(c *Config) {}},
		{name: "unknown env", modify: func(c *Config) { c.Env = "dev" }, wantErr: true},
		{name: "unknown storage driver", modify: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: true},
		{name: "postgres without credentials", modify: func(c *Config) { c.Storage.Driver = "postgres" }, wantErr: true},
		{
			name: "postgres with credentials",
			modify: func(c *Config) {
				c.Storage.Driver = "postgres"
				c.Storage.Postgres.User = "shop"
				c.Storage.Postgres.Password = "secret"
			},
		},
		{name: "kafka notifier without brokers", modify: func(c *Config) {
			c.Notifier.Driver = "kafka"
			c.Kafka.Brokers = nil
		}, wantErr: true},
		{name: "disabled kafka is not validated", modify: func(c *Config) { c.Kafka.Brokers = nil }},
		{name: "zero cache capacity", modify: func(c *Config) { c.Cache.Capacity = 0 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := New()
			tc.modify(&conf)

			err := conf.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
