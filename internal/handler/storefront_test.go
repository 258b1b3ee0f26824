package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/handler"
	"github.com/SergeyBogomolovv/royal-shop/internal/notify"
	"github.com/SergeyBogomolovv/royal-shop/internal/service"
	"github.com/SergeyBogomolovv/royal-shop/pkg/cache"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPersister struct{}

func (nopPersister) Save([]entities.Order) {}

type nopNotifier struct{}

func (nopNotifier) Dispatch(context.Context, string, notify.Kind, map[string]string) *notify.Delivery {
	return nil
}

type storefront struct {
	t      *testing.T
	router chi.Router
	svc    *service.ShopService
}

func newStorefront(t *testing.T) *storefront {
	products := []entities.Product{
		{ID: "PROD-1", Name: "经典 香水", Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(30), Category: "香水", Stock: 5},
		{ID: "PROD-2", Name: "奢华 手表", Price: decimal.NewFromInt(250), Cost: decimal.NewFromInt(80), Category: "腕表", Stock: 1},
	}
	svc := service.NewShopService(newTestLogger(), products, nopPersister{}, nopNotifier{})
	keys := cache.NewLRUCache[string](10, time.Minute)

	r := chi.NewRouter()
	handler.NewStorefrontHandler(newTestLogger(), svc, keys).Init(r)
	return &storefront{t: t, router: r, svc: svc}
}

func (s *storefront) do(method, path, body string, headers ...string) (int, string) {
	s.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr.Code, rr.Body.String()
}

const checkoutBody = `{"name":"王伟","phone":"13800000000","address":"上海市 1号","paymentMethod":"alipay"}`

func TestStorefront_Catalog(t *testing.T) {
	s := newStorefront(t)

	status, body := s.do(http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":"PROD-1"`)
	assert.NotContains(t, body, `"cost"`)

	status, body = s.do(http.MethodGet, "/products?category=%E8%85%95%E8%A1%A8", "")
	require.Equal(t, http.StatusOK, status)
	var products []handler.Product
	require.NoError(t, json.Unmarshal([]byte(body), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "PROD-2", products[0].ID)

	status, _ = s.do(http.MethodGet, "/products/PROD-404", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = s.do(http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["香水","腕表"]`, body)
}

func TestStorefront_Cart(t *testing.T) {
	s := newStorefront(t)

	status, body := s.do(http.MethodPost, "/cart/items", `{"productId":"PROD-2"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"outcome":"applied"`)

	status, body = s.do(http.MethodPost, "/cart/items", `{"productId":"PROD-2"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"outcome":"ignored_stock_ceiling"`)

	var resp handler.CartMutationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.False(t, resp.Applied)
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 1, resp.Cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(250).Equal(resp.Cart.Total))

	status, body = s.do(http.MethodPost, "/cart/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"productId":"required"`)

	status, body = s.do(http.MethodDelete, "/cart/items/PROD-404", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"outcome":"ignored_unknown_id"`)

	status, body = s.do(http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"count":0`)

	status, body = s.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"items":[]`)
}

func TestStorefront_Checkout(t *testing.T) {
	s := newStorefront(t)

	status, body := s.do(http.MethodPost, "/checkout", checkoutBody)
	require.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, `"cart is empty"`)

	s.do(http.MethodPost, "/cart/items", `{"productId":"PROD-1"}`)
	s.do(http.MethodPost, "/cart/items", `{"productId":"PROD-1"}`)

	status, body = s.do(http.MethodPost, "/checkout", `{"name":"王伟","phone":"1","address":"a","paymentMethod":"cash"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, `"paymentMethod":"oneof"`)

	status, body = s.do(http.MethodPost, "/checkout", checkoutBody)
	require.Equal(t, http.StatusCreated, status)

	var info handler.PaymentInfo
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.True(t, strings.HasPrefix(info.Order.ID, "ORD-"))
	assert.True(t, decimal.NewFromInt(200).Equal(info.Order.TotalAmount))
	assert.Equal(t, "PENDING_PAYMENT", info.Order.Status)
	require.NotEmpty(t, info.Accounts)
	for _, acc := range info.Accounts {
		assert.Equal(t, "alipay", acc.Type)
	}
	assert.NotContains(t, body, `"profit"`)

	p, err := s.svc.Product("PROD-1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
	assert.Empty(t, s.svc.Cart())

	status, body = s.do(http.MethodGet, "/orders/"+info.Order.ID, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"statusLabel":"待转账"`)

	status, _ = s.do(http.MethodGet, "/orders/"+info.Order.ID+"/payment", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(http.MethodGet, "/orders/ORD-404", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestStorefront_CheckoutIdempotent(t *testing.T) {
	s := newStorefront(t)
	s.do(http.MethodPost, "/cart/items", `{"productId":"PROD-1"}`)

	status, first := s.do(http.MethodPost, "/checkout", checkoutBody, "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusCreated, status)

	s.do(http.MethodPost, "/cart/items", `{"productId":"PROD-1"}`)
	status, second := s.do(http.MethodPost, "/checkout", checkoutBody, "Idempotency-Key", "k-1")
	require.Equal(t, http.StatusOK, status)

	var a, b handler.PaymentInfo
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Equal(t, a.Order.ID, b.Order.ID)

	assert.Len(t, s.svc.Orders(), 1)
	assert.Len(t, s.svc.Cart(), 1)
}
