package repo

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/shopspring/decimal"
)

// Order сохраненный заказ: статус подписью (待转账 и т.д.), createdAt в миллисекундах.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Address       string          `json:"address"`
	Items         []CartItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Profit        decimal.Decimal `json:"profit"`
	Status        string          `json:"status"`
	CreatedAt     int64           `json:"createdAt"`
	PaymentMethod string          `json:"paymentMethod"`
}

type CartItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	MainImage   string          `json:"mainImage"`
	Gallery     []string        `json:"gallery"`
	Rating      float64         `json:"rating"`
	Sales       int             `json:"sales"`
	Stock       int             `json:"stock"`
	Quantity    int             `json:"quantity"`
}

func CartItemFromEntity(l entities.CartLine) CartItem {
	return CartItem{
		ID:          l.ID,
		Name:        l.Name,
		Price:       l.Price,
		Cost:        l.Cost,
		Category:    l.Category,
		Description: l.Description,
		MainImage:   l.MainImage,
		Gallery:     l.Gallery,
		Rating:      l.Rating,
		Sales:       l.Sales,
		Stock:       l.Stock,
		Quantity:    l.Quantity,
	}
}

func CartItemToEntity(i CartItem) entities.CartLine {
	return entities.CartLine{
		Product: entities.Product{
			ID:          i.ID,
			Name:        i.Name,
			Price:       i.Price,
			Cost:        i.Cost,
			Category:    i.Category,
			Description: i.Description,
			MainImage:   i.MainImage,
			Gallery:     i.Gallery,
			Rating:      i.Rating,
			Sales:       i.Sales,
			Stock:       i.Stock,
		},
		Quantity: i.Quantity,
	}
}

func OrderFromEntity(o entities.Order) Order {
	items := make([]CartItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, CartItemFromEntity(it))
	}

	return Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		TotalCost:     o.TotalCost,
		Profit:        o.Profit,
		Status:        o.Status.Label(),
		CreatedAt:     o.CreatedAt.UnixMilli(),
		PaymentMethod: string(o.PaymentMethod),
	}
}

// OrderToEntity пересчитывает прибыль из суммы и себестоимости,
// сохраненное значение profit не используется.
func OrderToEntity(o Order) (entities.Order, error) {
	if o.ID == "" {
		return entities.Order{}, fmt.Errorf("order without id")
	}

	status, err := entities.ParseOrderStatus(o.Status)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", o.ID, err)
	}

	items := make([]entities.CartLine, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, CartItemToEntity(it))
	}

	return entities.Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		Items:         items,
		TotalAmount:   o.TotalAmount,
		TotalCost:     o.TotalCost,
		Profit:        o.TotalAmount.Sub(o.TotalCost),
		Status:        status,
		CreatedAt:     time.UnixMilli(o.CreatedAt),
	}, nil
}
