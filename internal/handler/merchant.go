package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/projection"
	"github.com/SergeyBogomolovv/royal-shop/internal/service"
	"github.com/SergeyBogomolovv/royal-shop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Merchant interface {
	Dashboard() projection.Dashboard
	Orders() []entities.Order
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (service.StatusChange, error)
	ShippingLabel(orderID string) (string, error)
	SearchProducts(query string) projection.SearchResult
	SetStock(productID string, stock int) entities.Outcome
}

type MerchantHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Merchant
}

func NewMerchantHandler(logger *slog.Logger, svc Merchant) *MerchantHandler {
	return &MerchantHandler{
		logger:   logger.With(slog.String("handler", "merchant")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *MerchantHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/orders", h.ListOrders)
		r.Patch("/orders/{id}/status", h.UpdateStatus)
		r.Get("/orders/{id}/label", h.GetShippingLabel)
		r.Get("/products", h.SearchProducts)
		r.Put("/products/{id}/stock", h.SetStock)
	})
}

// GetDashboard возвращает сводку продаж.
// @Summary      Сводка продаж
// @Description  Выручка, прибыль, счетчики статусов и последние 10 заказов для графика
// @Tags         merchant
// @Success      200  {object}  Dashboard
// @Router       /admin/dashboard [get]
func (h *MerchantHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, DashboardToJSON(h.svc.Dashboard()), http.StatusOK)
}

// ListOrders возвращает все заказы, новые первыми.
// @Summary      Заказы
// @Tags         merchant
// @Success      200  {array}  AdminOrder
// @Router       /admin/orders [get]
func (h *MerchantHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, AdminOrdersEntityToJSON(h.svc.Orders()), http.StatusOK)
}

// UpdateStatus меняет статус заказа.
// @Summary      Сменить статус заказа
// @Description  Переходы не ограничены. Переход в SHIPPED отправляет покупателю номер отправления
// @Tags         merchant
// @Param        id       path      string         true  "Идентификатор заказа"
// @Param        request  body      StatusRequest  true  "Новый статус"
// @Success      200      {object}  StatusResponse
// @Failure      400      {object}  utils.ErrorResponse "Неизвестный статус"
// @Router       /admin/orders/{id}/status [patch]
func (h *MerchantHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	status, err := entities.ParseOrderStatus(req.Status)
	if err != nil {
		utils.WriteError(w, "invalid order status", http.StatusBadRequest)
		return
	}

	change, err := h.svc.UpdateStatus(ctx, chi.URLParam(r, "id"), status)
	if errors.Is(err, entities.ErrInvalidStatus) {
		utils.WriteError(w, "invalid order status", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update status", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, StatusChangeToJSON(change), http.StatusOK)
}

// GetShippingLabel возвращает адрес для заказа у поставщика.
// @Summary      Адрес доставки
// @Tags         merchant
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  ShippingLabel
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /admin/orders/{id}/label [get]
func (h *MerchantHandler) GetShippingLabel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	label, err := h.svc.ShippingLabel(id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build shipping label", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ShippingLabel{OrderID: id, Label: label}, http.StatusOK)
}

// SearchProducts ищет товары по названию.
// @Summary      Поиск товаров
// @Description  Поиск по подстроке без учета регистра, не больше 50 результатов
// @Tags         merchant
// @Param        q    query     string  false  "Строка поиска"
// @Success      200  {object}  ProductSearch
// @Router       /admin/products [get]
func (h *MerchantHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, SearchToJSON(h.svc.SearchProducts(r.URL.Query().Get("q"))), http.StatusOK)
}

// SetStock задает остаток товара.
// @Summary      Задать остаток
// @Tags         merchant
// @Param        id       path      string        true  "Идентификатор товара"
// @Param        request  body      StockRequest  true  "Остаток"
// @Success      200      {object}  OutcomeResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /admin/products/{id}/stock [put]
func (h *MerchantHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	var req StockRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	outcome := h.svc.SetStock(chi.URLParam(r, "id"), *req.Stock)
	utils.WriteJSON(w, OutcomeToJSON(outcome), http.StatusOK)
}
