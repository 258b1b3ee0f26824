package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage Storage `validate:"required"`

	Kafka Kafka `validate:"-"`

	Notifier Notifier `validate:"required"`

	Catalog Catalog `validate:"required"`

	Cache Cache `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Storage хранилище сохраненных заказов.
type Storage struct {
	Driver string `validate:"required,oneof=sqlite postgres redis memory"`
	Key    string `validate:"required"`

	WriteTimeout time.Duration `validate:"gt=0"`

	SQLitePath string

	Postgres Postgres `validate:"-"`
	Redis    Redis    `validate:"-"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Kafka struct {
	Enabled bool

	GroupID            string   `validate:"required"`
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	CommandsTopic      string   `validate:"required"`
	NotificationsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Notifier struct {
	Driver  string        `validate:"required,oneof=sms kafka"`
	Latency time.Duration `validate:"gte=0"`

	BreakerFailures uint32        `validate:"gte=1"`
	BreakerTimeout  time.Duration `validate:"gt=0"`
}

type Catalog struct {
	Size int `validate:"gte=1"`
	Seed int64
}

// Cache ключи идемпотентности оформления заказа.
type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: Storage{
			Driver:       env("STORAGE_DRIVER", "sqlite"),
			Key:          env("STORAGE_KEY", "royal_orders"),
			WriteTimeout: envDuration("STORAGE_WRITE_TIMEOUT", 5*time.Second),
			SQLitePath:   env("SQLITE_PATH", "royal-shop.db"),

			Postgres: Postgres{
				Port:     envInt("POSTGRES_PORT", 5432),
				Host:     env("POSTGRES_HOST", "localhost"),
				DBName:   env("POSTGRES_DB", "shop"),
				User:     env("POSTGRES_USER", ""),
				Password: env("POSTGRES_PASSWORD", ""),

				SSLMode: env("POSTGRES_SSL_MODE", "disable"),

				MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 5),
				MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
			},

			Redis: Redis{
				Addr:     env("REDIS_ADDR", "localhost:6379"),
				Password: env("REDIS_PASSWORD", ""),
				DB:       envInt("REDIS_DB", 0),
			},
		},

		Kafka: Kafka{
			Enabled:            envBool("KAFKA_ENABLED", false),
			GroupID:            env("KAFKA_GROUP_ID", "royal-shop"),
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			CommandsTopic:      env("KAFKA_COMMANDS_TOPIC", "shop-commands"),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "shop-notifications"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Notifier: Notifier{
			Driver:          env("NOTIFIER_DRIVER", "sms"),
			Latency:         envDuration("NOTIFIER_LATENCY", 500*time.Millisecond),
			BreakerFailures: uint32(envInt("NOTIFIER_BREAKER_FAILURES", 5)),
			BreakerTimeout:  envDuration("NOTIFIER_BREAKER_TIMEOUT", 30*time.Second),
		},

		Catalog: Catalog{
			Size: envInt("CATALOG_SIZE", 220),
			Seed: int64(envInt("CATALOG_SEED", int(time.Now().UnixNano()))),
		},

		Cache: Cache{
			Capacity: envInt("IDEMPOTENCY_CACHE_CAPACITY", 1000),
			TTL:      envDuration("IDEMPOTENCY_CACHE_TTL", 10*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	switch c.Storage.Driver {
	case "postgres":
		if err := validate.Struct(c.Storage.Postgres); err != nil {
			return err
		}
	case "redis":
		if err := validate.Struct(c.Storage.Redis); err != nil {
			return err
		}
	}

	if c.Kafka.Enabled || c.Notifier.Driver == "kafka" {
		if err := validate.Struct(c.Kafka); err != nil {
			return err
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
