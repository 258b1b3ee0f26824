package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/notify"
	"github.com/SergeyBogomolovv/royal-shop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const idempotencyHeader = "Idempotency-Key"

type Storefront interface {
	ProductsByCategory(category string) []entities.Product
	Product(id string) (entities.Product, error)
	Categories() []string

	Cart() []entities.CartLine
	CartTotal() decimal.Decimal
	AddItem(productID string) entities.Outcome
	RemoveItem(productID string) entities.Outcome
	ClearCart()

	Checkout(ctx context.Context, details entities.CustomerDetails) (entities.Order, *notify.Delivery, error)
	Order(id string) (entities.Order, error)
	PaymentAccountsFor(orderID string) (entities.Order, []entities.PaymentAccount, error)
}

// IdempotencyStore запоминает id заказа, созданного по ключу идемпотентности.
type IdempotencyStore interface {
	Get(key string) (string, bool)
	Set(key string, orderID string)
}

type StorefrontHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Storefront

	keys   IdempotencyStore
	keysMu sync.Mutex
}

func NewStorefrontHandler(logger *slog.Logger, svc Storefront, keys IdempotencyStore) *StorefrontHandler {
	return &StorefrontHandler{
		logger:   logger.With(slog.String("handler", "storefront")),
		validate: utils.NewValidator(),
		svc:      svc,
		keys:     keys,
	}
}

func (h *StorefrontHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/categories", h.ListCategories)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddCartItem)
		r.Delete("/items/{id}", h.RemoveCartItem)
	})

	r.Post("/checkout", h.Checkout)
	r.Get("/orders/{id}", h.GetOrder)
	r.Get("/orders/{id}/payment", h.GetPayment)
}

// ListProducts возвращает каталог.
// @Summary      Каталог товаров
// @Description  Возвращает товары витрины, опционально по категории
// @Tags         storefront
// @Param        category  query  string  false  "Категория, All или пусто для всех"
// @Success      200  {array}  Product
// @Router       /products [get]
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.svc.ProductsByCategory(r.URL.Query().Get("category"))
	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// GetProduct возвращает товар по id.
// @Summary      Получить товар
// @Tags         storefront
// @Param        id   path      string  true  "Идентификатор товара"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /products/{id} [get]
func (h *StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.svc.Product(chi.URLParam(r, "id"))
	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get product", err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// ListCategories возвращает категории каталога.
// @Summary      Категории
// @Tags         storefront
// @Success      200  {array}  string
// @Router       /categories [get]
func (h *StorefrontHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.svc.Categories(), http.StatusOK)
}

// GetCart возвращает корзину.
// @Summary      Корзина
// @Tags         cart
// @Success      200  {object}  Cart
// @Router       /cart [get]
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.cart(), http.StatusOK)
}

// AddCartItem добавляет единицу товара в корзину.
// @Summary      Добавить товар в корзину
// @Description  Не меняет корзину, если товара нет в наличии или достигнут остаток; результат в outcome
// @Tags         cart
// @Param        request  body      AddItemRequest  true  "Товар"
// @Success      200      {object}  CartMutationResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /cart/items [post]
func (h *StorefrontHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	outcome := h.svc.AddItem(req.ProductID)
	utils.WriteJSON(w, h.cartMutation(outcome), http.StatusOK)
}

// RemoveCartItem удаляет товар из корзины.
// @Summary      Удалить товар из корзины
// @Tags         cart
// @Param        id   path      string  true  "Идентификатор товара"
// @Success      200  {object}  CartMutationResponse
// @Router       /cart/items/{id} [delete]
func (h *StorefrontHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	outcome := h.svc.RemoveItem(chi.URLParam(r, "id"))
	utils.WriteJSON(w, h.cartMutation(outcome), http.StatusOK)
}

// ClearCart очищает корзину.
// @Summary      Очистить корзину
// @Tags         cart
// @Success      200  {object}  CartMutationResponse
// @Router       /cart [delete]
func (h *StorefrontHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearCart()
	utils.WriteJSON(w, h.cartMutation(entities.OutcomeApplied), http.StatusOK)
}

// Checkout оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  Списывает остатки, создает заказ и очищает корзину. Повтор с тем же Idempotency-Key возвращает уже созданный заказ
// @Tags         orders
// @Param        Idempotency-Key  header    string           false  "Ключ идемпотентности"
// @Param        request          body      CheckoutRequest  true   "Данные покупателя"
// @Success      201  {object}  PaymentInfo
// @Success      200  {object}  PaymentInfo "Повтор запроса"
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Корзина пуста"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	key := r.Header.Get(idempotencyHeader)
	if key != "" {
		h.keysMu.Lock()
		defer h.keysMu.Unlock()

		if orderID, ok := h.keys.Get(key); ok {
			h.logger.DebugContext(ctx, "checkout replayed", slog.String("order_id", orderID))
			h.writePayment(w, r, orderID, http.StatusOK)
			return
		}
	}

	order, _, err := h.svc.Checkout(ctx, CheckoutJSONToEntity(req))
	if errors.Is(err, entities.ErrEmptyCart) {
		utils.WriteError(w, "cart is empty", http.StatusConflict)
		return
	}
	if errors.Is(err, entities.ErrInvalidCustomerDetails) {
		utils.WriteValidationError(w, err)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to place order", err)
		return
	}

	if key != "" {
		h.keys.Set(key, order.ID)
	}
	h.writePayment(w, r, order.ID, http.StatusCreated)
}

// GetOrder возвращает заказ покупателя.
// @Summary      Получить заказ
// @Tags         orders
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [get]
func (h *StorefrontHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.Order(chi.URLParam(r, "id"))
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetPayment возвращает заказ и реквизиты для перевода.
// @Summary      Реквизиты для оплаты
// @Tags         orders
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  PaymentInfo
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id}/payment [get]
func (h *StorefrontHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	h.writePayment(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

func (h *StorefrontHandler) writePayment(w http.ResponseWriter, r *http.Request, orderID string, code int) {
	order, accounts, err := h.svc.PaymentAccountsFor(orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get payment accounts", err)
		return
	}

	utils.WriteJSON(w, PaymentInfo{
		Order:    OrderEntityToJSON(order),
		Accounts: PaymentAccountsEntityToJSON(accounts),
	}, code)
}

func (h *StorefrontHandler) cart() Cart {
	return CartEntityToJSON(h.svc.Cart(), h.svc.CartTotal())
}

func (h *StorefrontHandler) cartMutation(outcome entities.Outcome) CartMutationResponse {
	return CartMutationResponse{
		Outcome: outcome.String(),
		Applied: outcome.Applied(),
		Cart:    h.cart(),
	}
}

func (h *StorefrontHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}
