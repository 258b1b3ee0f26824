package handler

import (
	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/projection"
	"github.com/SergeyBogomolovv/royal-shop/internal/service"
	"github.com/shopspring/decimal"
)

// Product товар витрины, без себестоимости
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	MainImage   string          `json:"mainImage"`
	Gallery     []string        `json:"gallery"`
	Rating      float64         `json:"rating"`
	Sales       int             `json:"sales"`
	Stock       int             `json:"stock"`
}

// AdminProduct товар в консоли продавца
type AdminProduct struct {
	Product
	Cost decimal.Decimal `json:"cost" swaggertype:"number"`
}

// CartLine позиция корзины или заказа
type CartLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	MainImage string          `json:"mainImage"`
	Price     decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number"`
}

// Cart корзина покупателя
type Cart struct {
	Items []CartLine      `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total" swaggertype:"number"`
}

// CartMutationResponse результат изменения корзины
type CartMutationResponse struct {
	Outcome string `json:"outcome"`
	Applied bool   `json:"applied"`
	Cart    Cart   `json:"cart"`
}

// AddItemRequest добавление единицы товара в корзину
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// CheckoutRequest данные покупателя
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=bank alipay wechat"`
}

// Order заказ покупателя
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []CartLine      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount" swaggertype:"number"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"statusLabel"`
	CreatedAt     int64           `json:"createdAt"`
}

// AdminOrder заказ в консоли продавца
type AdminOrder struct {
	Order
	TotalCost decimal.Decimal `json:"totalCost" swaggertype:"number"`
	Profit    decimal.Decimal `json:"profit" swaggertype:"number"`
}

// PaymentAccount реквизиты для перевода
type PaymentAccount struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Account  string `json:"account"`
	BankName string `json:"bankName,omitempty"`
	QRCode   string `json:"qrCode,omitempty"`
}

// PaymentInfo заказ и реквизиты для его оплаты
type PaymentInfo struct {
	Order    Order            `json:"order"`
	Accounts []PaymentAccount `json:"accounts"`
}

// StatusRequest новый статус заказа: имя или подпись
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// StatusResponse результат смены статуса
type StatusResponse struct {
	Outcome  string      `json:"outcome"`
	Applied  bool        `json:"applied"`
	Order    *AdminOrder `json:"order,omitempty"`
	Tracking string      `json:"tracking,omitempty"`
}

// StockRequest новый остаток, отрицательные значения обнуляются
type StockRequest struct {
	Stock *int `json:"stock" validate:"required"`
}

// OutcomeResponse результат операции без тела
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
	Applied bool   `json:"applied"`
}

// ShippingLabel строка адреса для поставщика
type ShippingLabel struct {
	OrderID string `json:"orderId"`
	Label   string `json:"label"`
}

// Point точка графика продаж
type Point struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
	Profit decimal.Decimal `json:"profit" swaggertype:"number"`
}

// Dashboard сводка для продавца
type Dashboard struct {
	Revenue        decimal.Decimal `json:"revenue" swaggertype:"number"`
	Profit         decimal.Decimal `json:"profit" swaggertype:"number"`
	PendingPayment int             `json:"pendingPayment"`
	Processing     int             `json:"processing"`
	TotalOrders    int             `json:"totalOrders"`
	Series         []Point         `json:"series"`
}

// ProductSearch результат поиска по каталогу
type ProductSearch struct {
	Items     []AdminProduct `json:"items"`
	Total     int            `json:"total"`
	Truncated bool           `json:"truncated"`
}

func ProductEntityToJSON(p entities.Product) Product {
	gallery := p.Gallery
	if gallery == nil {
		gallery = []string{}
	}
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		MainImage:   p.MainImage,
		Gallery:     gallery,
		Rating:      p.Rating,
		Sales:       p.Sales,
		Stock:       p.Stock,
	}
}

func AdminProductEntityToJSON(p entities.Product) AdminProduct {
	return AdminProduct{Product: ProductEntityToJSON(p), Cost: p.Cost}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	return res
}

func CartLinesEntityToJSON(lines []entities.CartLine) []CartLine {
	res := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		res = append(res, CartLine{
			ProductID: l.ID,
			Name:      l.Name,
			MainImage: l.MainImage,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Amount:    l.Amount(),
		})
	}
	return res
}

func CartEntityToJSON(lines []entities.CartLine, total decimal.Decimal) Cart {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return Cart{Items: CartLinesEntityToJSON(lines), Count: count, Total: total}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		PaymentMethod: string(o.PaymentMethod),
		Items:         CartLinesEntityToJSON(o.Items),
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		StatusLabel:   o.Status.Label(),
		CreatedAt:     o.CreatedAt.UnixMilli(),
	}
}

func AdminOrderEntityToJSON(o entities.Order) AdminOrder {
	return AdminOrder{Order: OrderEntityToJSON(o), TotalCost: o.TotalCost, Profit: o.Profit}
}

func AdminOrdersEntityToJSON(orders []entities.Order) []AdminOrder {
	res := make([]AdminOrder, 0, len(orders))
	for _, o := range orders {
		res = append(res, AdminOrderEntityToJSON(o))
	}
	return res
}

func PaymentAccountsEntityToJSON(accounts []entities.PaymentAccount) []PaymentAccount {
	res := make([]PaymentAccount, 0, len(accounts))
	for _, a := range accounts {
		res = append(res, PaymentAccount{
			Type:     string(a.Type),
			Name:     a.Name,
			Account:  a.Account,
			BankName: a.BankName,
			QRCode:   a.QRCode,
		})
	}
	return res
}

func CheckoutJSONToEntity(req CheckoutRequest) entities.CustomerDetails {
	return entities.CustomerDetails{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: entities.PaymentMethod(req.PaymentMethod),
	}
}

func StatusChangeToJSON(c service.StatusChange) StatusResponse {
	res := StatusResponse{
		Outcome:  c.Outcome.String(),
		Applied:  c.Outcome.Applied(),
		Tracking: c.Tracking,
	}
	if c.Outcome.Applied() {
		order := AdminOrderEntityToJSON(c.Order)
		res.Order = &order
	}
	return res
}

func DashboardToJSON(d projection.Dashboard) Dashboard {
	series := make([]Point, 0, len(d.Series))
	for _, p := range d.Series {
		series = append(series, Point{Label: p.Label, Amount: p.Amount, Profit: p.Profit})
	}
	return Dashboard{
		Revenue:        d.Revenue,
		Profit:         d.Profit,
		PendingPayment: d.PendingPayment,
		Processing:     d.Processing,
		TotalOrders:    d.TotalOrders,
		Series:         series,
	}
}

func SearchToJSON(r projection.SearchResult) ProductSearch {
	items := make([]AdminProduct, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, AdminProductEntityToJSON(p))
	}
	return ProductSearch{Items: items, Total: r.Total, Truncated: r.Truncated}
}

func OutcomeToJSON(o entities.Outcome) OutcomeResponse {
	return OutcomeResponse{Outcome: o.String(), Applied: o.Applied()}
}
