package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
)

// OrderRepo хранит всю последовательность заказов одной записью KV.
type OrderRepo struct {
	logger *slog.Logger
	kv     KV
	key    string
}

func NewOrderRepo(logger *slog.Logger, kv KV, key string) *OrderRepo {
	return &OrderRepo{
		logger: logger.With(slog.String("repo", "orders")),
		kv:     kv,
		key:    key,
	}
}

// Load никогда не возвращает ошибку: отсутствующие или нечитаемые данные
// дают пустую последовательность, отдельные некорректные заказы пропускаются.
func (r *OrderRepo) Load(ctx context.Context) []entities.Order {
	orders, err := r.load(ctx)
	if errors.Is(err, ErrKeyNotFound) {
		r.logger.Info("no saved orders")
		return []entities.Order{}
	}
	if err != nil {
		r.logger.Warn("failed to load saved orders, starting empty", slog.Any("error", err))
		return []entities.Order{}
	}

	r.logger.Info("orders loaded", slog.Int("count", len(orders)))
	return orders
}

func (r *OrderRepo) load(ctx context.Context) ([]entities.Order, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}

	var stored []Order
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(stored))
	for i, o := range stored {
		order, err := OrderToEntity(o)
		if err != nil {
			r.logger.Warn("skipping invalid saved order", slog.Int("index", i), slog.Any("error", err))
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepo) Save(ctx context.Context, orders []entities.Order) error {
	stored := make([]Order, 0, len(orders))
	for _, o := range orders {
		stored = append(stored, OrderFromEntity(o))
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}

	if err := r.kv.Put(ctx, r.key, data); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}
	return nil
}
