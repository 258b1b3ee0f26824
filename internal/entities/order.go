package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	StatusPaidVerifying  OrderStatus = "PAID_VERIFYING"
	StatusProcessing     OrderStatus = "PROCESSING"
	StatusShipped        OrderStatus = "SHIPPED"
	StatusCompleted      OrderStatus = "COMPLETED"
)

// Statuses в порядке жизненного цикла заказа.
var Statuses = []OrderStatus{
	StatusPendingPayment,
	StatusPaidVerifying,
	StatusProcessing,
	StatusShipped,
	StatusCompleted,
}

var statusLabels = map[OrderStatus]string{
	StatusPendingPayment: "待转账",
	StatusPaidVerifying:  "查帐中",
	StatusProcessing:     "待发货",
	StatusShipped:        "已发货",
	StatusCompleted:      "已完成",
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label подпись статуса в консоли продавца.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}

// ParseOrderStatus принимает как имя статуса, так и его подпись:
// старые сохраненные заказы хранят подписи.
func ParseOrderStatus(v string) (OrderStatus, error) {
	if s := OrderStatus(v); s.Valid() {
		return s, nil
	}
	for s, label := range statusLabels {
		if label == v {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}

type CustomerDetails struct {
	Name          string        `validate:"required"`
	Phone         string        `validate:"required"`
	Address       string        `validate:"required"`
	PaymentMethod PaymentMethod `validate:"required,oneof=bank alipay wechat"`
}

// Order после создания меняет только Status.
type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Address       string
	PaymentMethod PaymentMethod

	Items       []CartLine
	TotalAmount decimal.Decimal
	TotalCost   decimal.Decimal
	Profit      decimal.Decimal

	Status    OrderStatus
	CreatedAt time.Time
}

func (o Order) Clone() Order {
	items := make([]CartLine, len(o.Items))
	for i, it := range o.Items {
		items[i] = it.Clone()
	}
	o.Items = items
	return o
}
