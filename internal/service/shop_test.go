package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/notify"
	notifyMocks "github.com/SergeyBogomolovv/royal-shop/internal/notify/mocks"
	"github.com/SergeyBogomolovv/royal-shop/internal/service"
	"github.com/SergeyBogomolovv/royal-shop/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProducts() []entities.Product {
	return []entities.Product{
		{ID: "PROD-1", Name: "经典 香水", Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(30), Category: "香水", Stock: 5},
		{ID: "PROD-2", Name: "奢华 手表", Price: decimal.NewFromInt(250), Cost: decimal.NewFromInt(80), Category: "腕表", Stock: 1},
		{ID: "PROD-3", Name: "限量 手袋", Price: decimal.NewFromInt(60), Cost: decimal.NewFromInt(25), Category: "精品包袋", Stock: 0},
	}
}

var validDetails = entities.CustomerDetails{
	Name:          "王伟",
	Phone:         "13800000000",
	Address:       "上海市 1号",
	PaymentMethod: entities.PaymentBank,
}

func newService(t *testing.T) (*service.ShopService, *mocks.MockPersister, *mocks.MockNotifier) {
	t.Helper()
	persister := mocks.NewMockPersister(t)
	notifier := mocks.NewMockNotifier(t)
	return service.NewShopService(newTestLogger(), testProducts(), persister, notifier), persister, notifier
}

func stockOf(t *testing.T, s *service.ShopService, id string) int {
	t.Helper()
	p, err := s.Product(id)
	require.NoError(t, err)
	return p.Stock
}

func TestShopService_AddItem(t *testing.T) {
	testCases := []struct {
		name     string
		adds     []string
		want     []entities.Outcome
		quantity map[string]int
	}{
		{
			name:     "single item",
			adds:     []string{"PROD-1"},
			want:     []entities.Outcome{entities.OutcomeApplied},
			quantity: map[string]int{"PROD-1": 1},
		},
		{
			name:     "stock of one added twice",
			adds:     []string{"PROD-2", "PROD-2"},
			want:     []entities.Outcome{entities.OutcomeApplied, entities.OutcomeIgnoredStockCeiling},
			quantity: map[string]int{"PROD-2": 1},
		},
		{
			name:     "out of stock",
			adds:     []string{"PROD-3"},
			want:     []entities.Outcome{entities.OutcomeIgnoredOutOfStock},
			quantity: map[string]int{},
		},
		{
			name:     "unknown product",
			adds:     []string{"PROD-404"},
			want:     []entities.Outcome{entities.OutcomeIgnoredUnknownID},
			quantity: map[string]int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newService(t)

			for i, id := range tc.adds {
				assert.Equal(t, tc.want[i], s.AddItem(id), "add #%d", i)
			}

			lines := s.Cart()
			got := make(map[string]int, len(lines))
			for _, l := range lines {
				got[l.ID] = l.Quantity
			}
			assert.Equal(t, tc.quantity, got)
		})
	}
}

func TestShopService_AddItemUsesLiveStock(t *testing.T) {
	s, _, _ := newService(t)

	require.Equal(t, entities.OutcomeApplied, s.AddItem("PROD-1"))
	require.Equal(t, entities.OutcomeApplied, s.SetStock("PROD-1", 1))
	assert.Equal(t, entities.OutcomeIgnoredStockCeiling, s.AddItem("PROD-1"))

	require.Equal(t, entities.OutcomeApplied, s.SetStock("PROD-3", 2))
	assert.Equal(t, entities.OutcomeApplied, s.AddItem("PROD-3"))
}

func TestShopService_RemoveAndClear(t *testing.T) {
	s, _, _ := newService(t)

	s.AddItem("PROD-1")
	s.AddItem("PROD-2")

	assert.Equal(t, entities.OutcomeIgnoredUnknownID, s.RemoveItem("PROD-404"))
	assert.Equal(t, entities.OutcomeApplied, s.RemoveItem("PROD-1"))
	assert.Equal(t, entities.OutcomeIgnoredUnknownID, s.RemoveItem("PROD-1"))
	require.Len(t, s.Cart(), 1)
	assert.True(t, decimal.NewFromInt(250).Equal(s.CartTotal()))

	s.ClearCart()
	assert.Empty(t, s.Cart())
	assert.True(t, s.CartTotal().IsZero())
}

func TestShopService_PlaceOrder(t *testing.T) {
	s, persister, notifier := newService(t)

	var persisted []entities.Order
	persister.EXPECT().Save(mock.Anything).Run(func(orders []entities.Order) {
		persisted = orders
	}).Once()
	notifier.EXPECT().Dispatch(mock.Anything, "13800000000", notify.KindOrderCreated, mock.Anything).
		Run(func(_ context.Context, _ string, _ notify.Kind, params map[string]string) {
			assert.True(t, strings.HasPrefix(params["orderId"], "ORD-"))
		}).
		Return(nil).Once()

	s.AddItem("PROD-1")
	s.AddItem("PROD-1")

	order, _, err := s.PlaceOrder(context.Background(), validDetails)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(200).Equal(order.TotalAmount))
	assert.True(t, decimal.NewFromInt(60).Equal(order.TotalCost))
	assert.True(t, decimal.NewFromInt(140).Equal(order.Profit))
	assert.Equal(t, entities.StatusPendingPayment, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Empty(t, s.Cart())
	assert.Equal(t, 3, stockOf(t, s, "PROD-1"))

	require.Len(t, persisted, 1)
	assert.Equal(t, order.ID, persisted[0].ID)

	stored, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
}

func TestShopService_PlaceOrderInvalidDetails(t *testing.T) {
	testCases := []struct {
		name    string
		details entities.CustomerDetails
	}{
		{name: "missing name", details: entities.CustomerDetails{Phone: "1", Address: "a", PaymentMethod: entities.PaymentBank}},
		{name: "blank phone", details: entities.CustomerDetails{Name: "n", Phone: "   ", Address: "a", PaymentMethod: entities.PaymentBank}},
		{name: "missing address", details: entities.CustomerDetails{Name: "n", Phone: "1", PaymentMethod: entities.PaymentBank}},
		{name: "unknown payment", details: entities.CustomerDetails{Name: "n", Phone: "1", Address: "a", PaymentMethod: "cash"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newService(t)
			s.AddItem("PROD-1")

			_, _, err := s.PlaceOrder(context.Background(), tc.details)
			assert.ErrorIs(t, err, entities.ErrInvalidCustomerDetails)

			assert.Len(t, s.Cart(), 1)
			assert.Equal(t, 5, stockOf(t, s, "PROD-1"))
			assert.Empty(t, s.Orders())
		})
	}
}

func TestShopService_PlaceOrderEmptyCart(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything).Once()
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, notify.KindOrderCreated, mock.Anything).Return(nil).Once()

	order, _, err := s.PlaceOrder(context.Background(), validDetails)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.True(t, order.TotalAmount.IsZero())
	assert.True(t, order.Profit.IsZero())
}

func TestShopService_CheckoutRejectsEmptyCart(t *testing.T) {
	s, _, _ := newService(t)

	_, _, err := s.Checkout(context.Background(), validDetails)
	assert.ErrorIs(t, err, entities.ErrEmptyCart)
	assert.Empty(t, s.Orders())
}

func TestShopService_StockFlooredAtZero(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s.AddItem("PROD-1")
	s.AddItem("PROD-1")
	s.AddItem("PROD-1")
	// склад уменьшили, пока товар лежал в корзине
	s.SetStock("PROD-1", 1)

	order, _, err := s.Checkout(context.Background(), validDetails)
	require.NoError(t, err)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, 0, stockOf(t, s, "PROD-1"))
}

func TestShopService_UpdateStatus(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, notify.KindOrderCreated, mock.Anything).Return(nil).Once()

	s.AddItem("PROD-1")
	order, _, err := s.Checkout(context.Background(), validDetails)
	require.NoError(t, err)

	change, err := s.UpdateStatus(context.Background(), order.ID, entities.StatusPaidVerifying)
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeApplied, change.Outcome)
	assert.Equal(t, entities.StatusPaidVerifying, change.Order.Status)
	assert.Empty(t, change.Tracking)
	assert.Nil(t, change.Delivery)

	// откат назад разрешен
	change, err = s.UpdateStatus(context.Background(), order.ID, entities.StatusPendingPayment)
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeApplied, change.Outcome)

	stored, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPendingPayment, stored.Status)
	assert.True(t, order.TotalAmount.Equal(stored.TotalAmount))
	assert.Equal(t, order.Items, stored.Items)
}

func TestShopService_UpdateStatusRejected(t *testing.T) {
	s, _, _ := newService(t)

	_, err := s.UpdateStatus(context.Background(), "ORD-1", entities.OrderStatus("LOST"))
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	change, err := s.UpdateStatus(context.Background(), "ORD-404", entities.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entities.OutcomeIgnoredUnknownID, change.Outcome)
	assert.Nil(t, change.Delivery)
}

func TestShopService_ShippedNotifies(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, notify.KindOrderCreated, mock.Anything).Return(nil)

	var trackings []string
	notifier.EXPECT().Dispatch(mock.Anything, "13800000000", notify.KindOrderShipped, mock.Anything).
		Run(func(_ context.Context, _ string, _ notify.Kind, params map[string]string) {
			trackings = append(trackings, params["tracking"])
		}).
		Return(nil).Times(2)

	var ids []string
	for range 3 {
		s.AddItem("PROD-1")
		order, _, err := s.Checkout(context.Background(), validDetails)
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	first, err := s.UpdateStatus(context.Background(), ids[0], entities.StatusShipped)
	require.NoError(t, err)
	_, err = s.UpdateStatus(context.Background(), ids[0], entities.StatusProcessing)
	require.NoError(t, err)
	second, err := s.UpdateStatus(context.Background(), ids[0], entities.StatusShipped)
	require.NoError(t, err)

	require.Len(t, trackings, 2)
	assert.Equal(t, []string{first.Tracking, second.Tracking}, trackings)
	assert.NotEqual(t, first.Tracking, second.Tracking)
	for _, tr := range trackings {
		assert.True(t, strings.HasPrefix(tr, "SF"))
		assert.NotContains(t, ids, tr)
	}
}

func TestShopService_NotificationFailureKeepsOrder(t *testing.T) {
	sender := notifyMocks.NewMockSender(t)
	sender.EXPECT().Send(mock.Anything, "13800000000", notify.KindOrderCreated, mock.Anything).
		Return(false, errors.New("gateway down")).Once()

	dispatcher := notify.NewDispatcher(newTestLogger(), sender, time.Second)
	persister := mocks.NewMockPersister(t)
	persister.EXPECT().Save(mock.Anything).Once()

	s := service.NewShopService(newTestLogger(), testProducts(), persister, dispatcher)
	s.AddItem("PROD-1")

	order, delivery, err := s.Checkout(context.Background(), validDetails)
	require.NoError(t, err)
	require.NotNil(t, delivery)

	ok, err := delivery.Result()
	assert.Error(t, err)
	assert.False(t, ok)

	stored, err := s.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPendingPayment, stored.Status)
	assert.Equal(t, 4, stockOf(t, s, "PROD-1"))
}

func TestShopService_SetStock(t *testing.T) {
	s, _, _ := newService(t)

	assert.Equal(t, entities.OutcomeApplied, s.SetStock("PROD-1", -4))
	assert.Equal(t, 0, stockOf(t, s, "PROD-1"))

	assert.Equal(t, entities.OutcomeIgnoredUnknownID, s.SetStock("PROD-404", 10))
	_, err := s.Product("PROD-404")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestShopService_Queries(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s.AddItem("PROD-1")
	details := validDetails
	details.PaymentMethod = entities.PaymentWechat
	order, _, err := s.Checkout(context.Background(), details)
	require.NoError(t, err)

	dash := s.Dashboard()
	assert.Equal(t, 1, dash.TotalOrders)
	assert.Equal(t, 1, dash.PendingPayment)
	assert.True(t, decimal.NewFromInt(100).Equal(dash.Revenue))
	assert.True(t, decimal.NewFromInt(70).Equal(dash.Profit))

	got, accounts, err := s.PaymentAccountsFor(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.NotEmpty(t, accounts)
	for _, acc := range accounts {
		assert.Equal(t, entities.PaymentWechat, acc.Type)
	}

	label, err := s.ShippingLabel(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "王伟, 13800000000, 上海市 1号", label)

	_, err = s.ShippingLabel("ORD-404")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	res := s.SearchProducts("手")
	assert.Equal(t, 2, res.Total)

	assert.Equal(t, []string{"香水", "腕表", "精品包袋"}, s.Categories())
	assert.Len(t, s.ProductsByCategory("腕表"), 1)
	assert.Len(t, s.ProductsByCategory("All"), 3)
}

func TestShopService_Restore(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	future := time.Now().Add(time.Hour).UnixMilli()
	restored := entities.Order{
		ID:          "ORD-" + decimal.NewFromInt(future).String(),
		Status:      entities.StatusCompleted,
		TotalAmount: decimal.NewFromInt(10),
		TotalCost:   decimal.NewFromInt(4),
		Profit:      decimal.NewFromInt(6),
	}
	s.Restore([]entities.Order{restored})
	require.Len(t, s.Orders(), 1)

	s.AddItem("PROD-1")
	order, _, err := s.Checkout(context.Background(), validDetails)
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Greater(t, order.ID, restored.ID)
}

func TestShopService_ConcurrentCheckout(t *testing.T) {
	s, persister, notifier := newService(t)
	persister.EXPECT().Save(mock.Anything)
	notifier.EXPECT().Dispatch(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddItem("PROD-1")
			_, _, _ = s.Checkout(context.Background(), validDetails)
		}()
	}
	wg.Wait()

	total := 0
	seen := make(map[string]bool)
	for _, o := range s.Orders() {
		assert.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
		for _, it := range o.Items {
			total += it.Quantity
		}
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 0, stockOf(t, s, "PROD-1"))
}
