package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/app"
	"github.com/SergeyBogomolovv/royal-shop/internal/catalog"
	"github.com/SergeyBogomolovv/royal-shop/internal/config"
	"github.com/SergeyBogomolovv/royal-shop/internal/database"
	"github.com/SergeyBogomolovv/royal-shop/internal/handler"
	"github.com/SergeyBogomolovv/royal-shop/internal/notify"
	"github.com/SergeyBogomolovv/royal-shop/internal/repo"
	"github.com/SergeyBogomolovv/royal-shop/internal/service"
	"github.com/SergeyBogomolovv/royal-shop/pkg/cache"
	"github.com/SergeyBogomolovv/royal-shop/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const notifyTimeout = 10 * time.Second

// @title           Royal Shop API
// @version         1.0
// @description     Витрина и консоль продавца: каталог, корзина, заказы
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	kv, closeKV := newKV(logger, conf.Storage)
	defer closeKV()

	orderRepo := repo.NewOrderRepo(logger, kv, conf.Storage.Key)
	writer := repo.NewWriter(logger, orderRepo, conf.Storage.WriteTimeout)

	sender, closeSender := newSender(logger, conf)
	defer closeSender()
	dispatcher := notify.NewDispatcher(logger, sender, notifyTimeout)

	products := catalog.Generate(conf.Catalog.Size, rand.New(rand.NewSource(conf.Catalog.Seed)))
	shop := service.NewShopService(logger, products, writer, dispatcher)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), conf.Storage.WriteTimeout)
	shop.Restore(orderRepo.Load(loadCtx))
	cancelLoad()

	idempotencyKeys := cache.NewLRUCache[string](conf.Cache.Capacity, conf.Cache.TTL)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewStorefrontHandler(logger, shop, idempotencyKeys),
		handler.NewMerchantHandler(logger, shop),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, shop))
	}
	app.SetStarters(idempotencyKeys, writer)
	app.SetStoppers(stopFunc(dispatcher.Wait), stopFunc(writer.Flush))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case err := <-app.ServerErr():
		logger.Error("shutting down after server failure", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

// newKV открывает хранилище сохраненных заказов по STORAGE_DRIVER.
func newKV(logger *slog.Logger, cfg config.Storage) (repo.KV, func()) {
	switch cfg.Driver {
	case "postgres":
		db, err := database.NewPostgres(cfg.Postgres)
		panicIfErr("failed to connect to postgres", err)
		migrate(db)
		logger.Info("postgres connected")
		return repo.NewSQLStore(db, trm.NewManager(db), sq.Dollar), closer(logger, db)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout)
		defer cancel()
		panicIfErr("failed to connect to redis", client.Ping(ctx).Err())
		logger.Info("redis connected")
		return repo.NewRedisStore(client), closer(logger, client)

	case "memory":
		logger.Warn("orders are kept in memory only")
		return repo.NewMemoryStore(), func() {}

	default:
		db, err := database.NewSQLite(cfg.SQLitePath)
		panicIfErr("failed to open sqlite", err)
		migrate(db)
		logger.Info("sqlite opened", slog.String("path", cfg.SQLitePath))
		return repo.NewSQLStore(db, trm.NewManager(db), sq.Question), closer(logger, db)
	}
}

func migrate(db *sqlx.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	panicIfErr("failed to migrate", database.Migrate(ctx, db))
}

func newSender(logger *slog.Logger, conf config.Config) (notify.Sender, func()) {
	var sender notify.Sender
	closeFn := func() {}

	switch conf.Notifier.Driver {
	case "kafka":
		w := notify.NewKafkaWriter(conf.Kafka.Brokers, conf.Kafka.NotificationsTopic, conf.Kafka.BatchTimeout)
		sender = notify.NewKafkaSender(w)
		closeFn = closer(logger, w)
	default:
		sender = notify.NewSMSSimulator(logger, conf.Notifier.Latency)
	}

	return notify.NewBreaker(logger, sender, notify.BreakerConfig{
		Name:     fmt.Sprintf("notify-%s", conf.Notifier.Driver),
		Failures: conf.Notifier.BreakerFailures,
		Timeout:  conf.Notifier.BreakerTimeout,
	}), closeFn
}

func closer(logger *slog.Logger, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Error("failed to close resource", slog.Any("error", err))
		}
	}
}

type stopFunc func(ctx context.Context) error

func (f stopFunc) Stop(ctx context.Context) error {
	return f(ctx)
}
