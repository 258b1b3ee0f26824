package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/cart"
	"github.com/SergeyBogomolovv/royal-shop/internal/catalog"
	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/ledger"
	"github.com/SergeyBogomolovv/royal-shop/internal/notify"
	"github.com/SergeyBogomolovv/royal-shop/internal/projection"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Persister принимает снимок всех заказов после каждого изменения.
// Save не должен блокироваться на записи.
type Persister interface {
	Save(orders []entities.Order)
}

type Notifier interface {
	Dispatch(ctx context.Context, phone string, kind notify.Kind, params map[string]string) *notify.Delivery
}

// StatusChange результат смены статуса. Delivery и Tracking заполнены,
// только если заказ перешел в SHIPPED.
type StatusChange struct {
	Order    entities.Order
	Outcome  entities.Outcome
	Tracking string
	Delivery *notify.Delivery
}

// ShopService владеет каталогом, корзиной и журналом заказов.
// Все изменения сериализуются одним мьютексом.
type ShopService struct {
	logger    *slog.Logger
	validate  *validator.Validate
	persister Persister
	notifier  Notifier
	now       func() time.Time

	mu      sync.RWMutex
	catalog *catalog.Store
	cart    *cart.Cart
	ledger  *ledger.Ledger
}

func NewShopService(logger *slog.Logger, products []entities.Product, persister Persister, notifier Notifier) *ShopService {
	return &ShopService{
		logger:    logger.With(slog.String("service", "shop")),
		validate:  validator.New(),
		persister: persister,
		notifier:  notifier,
		now:       time.Now,
		catalog:   catalog.NewStore(products),
		cart:      cart.New(),
		ledger:    ledger.New(),
	}
}

// Restore подменяет журнал заказами из хранилища. Повторно не сохраняет.
func (s *ShopService) Restore(orders []entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Restore(orders)
	s.logger.Info("orders restored", slog.Int("count", len(orders)))
}

func (s *ShopService) Products() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.List()
}

func (s *ShopService) ProductsByCategory(category string) []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.ByCategory(category)
}

func (s *ShopService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Categories()
}

func (s *ShopService) Product(id string) (entities.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.catalog.Get(id)
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (s *ShopService) Cart() []entities.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Lines()
}

func (s *ShopService) CartTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Total()
}

// AddItem проверяет остаток по живому каталогу, а не по снимку в корзине.
func (s *ShopService) AddItem(productID string) entities.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog.Get(productID)
	if !ok {
		return s.cartMutation("add", entities.OutcomeIgnoredUnknownID)
	}
	return s.cartMutation("add", s.cart.Add(item))
}

func (s *ShopService) RemoveItem(productID string) entities.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartMutation("remove", s.cart.Remove(productID))
}

func (s *ShopService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.cartMutation("clear", entities.OutcomeApplied)
}

func (s *ShopService) cartMutation(op string, outcome entities.Outcome) entities.Outcome {
	cartMutations.WithLabelValues(op, outcome.String()).Inc()
	if !outcome.Applied() {
		s.logger.Debug("cart mutation ignored", slog.String("op", op), slog.String("outcome", outcome.String()))
	}
	return outcome
}

// PlaceOrder списывает остатки, создает заказ из текущей корзины и очищает ее.
// Уведомление уходит после фиксации; его ошибка заказ не отменяет.
// Пустая корзина дает заказ без позиций, см. Checkout.
func (s *ShopService) PlaceOrder(ctx context.Context, details entities.CustomerDetails) (entities.Order, *notify.Delivery, error) {
	return s.placeOrder(ctx, details, false)
}

// Checkout то же, что PlaceOrder, но отклоняет пустую корзину.
func (s *ShopService) Checkout(ctx context.Context, details entities.CustomerDetails) (entities.Order, *notify.Delivery, error) {
	return s.placeOrder(ctx, details, true)
}

func (s *ShopService) placeOrder(ctx context.Context, details entities.CustomerDetails, requireItems bool) (entities.Order, *notify.Delivery, error) {
	details = normalizeDetails(details)
	if err := s.validate.Struct(details); err != nil {
		return entities.Order{}, nil, fmt.Errorf("%w: %w", entities.ErrInvalidCustomerDetails, err)
	}

	s.mu.Lock()
	lines := s.cart.Lines()
	if requireItems && len(lines) == 0 {
		s.mu.Unlock()
		return entities.Order{}, nil, entities.ErrEmptyCart
	}

	s.catalog.Deduct(lines)
	order := s.ledger.Place(lines, details, s.now())
	s.cart.Clear()
	s.persister.Save(s.ledger.Orders())
	s.mu.Unlock()

	ordersPlaced.Inc()
	s.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.TotalAmount.String()),
	)

	delivery := s.notifier.Dispatch(ctx, order.CustomerPhone, notify.KindOrderCreated, map[string]string{
		"orderId": order.ID,
	})
	return order, delivery, nil
}

func normalizeDetails(d entities.CustomerDetails) entities.CustomerDetails {
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	return d
}

// UpdateStatus переходы свободные. Каждый переход в SHIPPED, в том числе
// повторный, отправляет покупателю новый номер отправления.
func (s *ShopService) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (StatusChange, error) {
	if !status.Valid() {
		return StatusChange{}, fmt.Errorf("%w: %q", entities.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	order, outcome := s.ledger.UpdateStatus(id, status)
	if !outcome.Applied() {
		s.mu.Unlock()
		statusUpdates.WithLabelValues(string(status), outcome.String()).Inc()
		s.logger.Debug("status update ignored", slog.String("order_id", id), slog.String("outcome", outcome.String()))
		return StatusChange{Outcome: outcome}, nil
	}

	var tracking string
	if status == entities.StatusShipped {
		tracking = s.ledger.NextTracking(s.now())
	}
	s.persister.Save(s.ledger.Orders())
	s.mu.Unlock()

	statusUpdates.WithLabelValues(string(status), outcome.String()).Inc()
	s.logger.Info("order status updated", slog.String("order_id", id), slog.String("status", string(status)))

	change := StatusChange{Order: order, Outcome: outcome, Tracking: tracking}
	if tracking != "" {
		change.Delivery = s.notifier.Dispatch(ctx, order.CustomerPhone, notify.KindOrderShipped, map[string]string{
			"tracking": tracking,
		})
	}
	return change, nil
}

func (s *ShopService) SetStock(productID string, stock int) entities.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := s.catalog.SetStock(productID, stock)
	stockUpdates.WithLabelValues(outcome.String()).Inc()
	if outcome.Applied() {
		s.logger.Info("stock updated", slog.String("product_id", productID), slog.Int("stock", max(stock, 0)))
	}
	return outcome
}

func (s *ShopService) Orders() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Orders()
}

func (s *ShopService) Order(id string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.ledger.Get(id)
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

// PaymentAccountsFor реквизиты для способа оплаты заказа.
func (s *ShopService) PaymentAccountsFor(orderID string) (entities.Order, []entities.PaymentAccount, error) {
	o, err := s.Order(orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	return o, catalog.AccountsFor(o.PaymentMethod), nil
}

func (s *ShopService) ShippingLabel(orderID string) (string, error) {
	o, err := s.Order(orderID)
	if err != nil {
		return "", err
	}
	return projection.ShippingLabel(o), nil
}

func (s *ShopService) Dashboard() projection.Dashboard {
	return projection.BuildDashboard(s.Orders())
}

func (s *ShopService) SearchProducts(query string) projection.SearchResult {
	return projection.Search(s.Products(), query, projection.SearchPageSize)
}
