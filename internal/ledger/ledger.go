package ledger

import (
	"time"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/shopspring/decimal"
)

// Ledger последовательность заказов, новые в начале.
// Не потокобезопасен: доступ сериализует service.ShopService.
type Ledger struct {
	orders []entities.Order
	seq    Sequencer
}

func New() *Ledger {
	return &Ledger{}
}

// Place создает заказ из снимка строк корзины. Пустой набор строк
// дает заказ без позиций: проверка корзины лежит на вызывающем.
func (l *Ledger) Place(lines []entities.CartLine, details entities.CustomerDetails, now time.Time) entities.Order {
	items := make([]entities.CartLine, len(lines))
	totalAmount, totalCost := decimal.Zero, decimal.Zero
	for i, line := range lines {
		items[i] = line.Clone()
		totalAmount = totalAmount.Add(line.Amount())
		totalCost = totalCost.Add(line.CostAmount())
	}

	order := entities.Order{
		ID:            FormatOrderID(l.seq.Next(now)),
		CustomerName:  details.Name,
		CustomerPhone: details.Phone,
		Address:       details.Address,
		PaymentMethod: details.PaymentMethod,
		Items:         items,
		TotalAmount:   totalAmount,
		TotalCost:     totalCost,
		Profit:        totalAmount.Sub(totalCost),
		Status:        entities.StatusPendingPayment,
		CreatedAt:     now,
	}

	l.orders = append([]entities.Order{order}, l.orders...)
	return order.Clone()
}

// UpdateStatus меняет только статус. Переходы не ограничены:
// продавец может откатить ошибочное действие.
func (l *Ledger) UpdateStatus(id string, status entities.OrderStatus) (entities.Order, entities.Outcome) {
	i := l.find(id)
	if i < 0 {
		return entities.Order{}, entities.OutcomeIgnoredUnknownID
	}
	l.orders[i].Status = status
	return l.orders[i].Clone(), entities.OutcomeApplied
}

func (l *Ledger) Get(id string) (entities.Order, bool) {
	i := l.find(id)
	if i < 0 {
		return entities.Order{}, false
	}
	return l.orders[i].Clone(), true
}

func (l *Ledger) Orders() []entities.Order {
	res := make([]entities.Order, len(l.orders))
	for i, o := range l.orders {
		res[i] = o.Clone()
	}
	return res
}

func (l *Ledger) Len() int {
	return len(l.orders)
}

// Restore заменяет последовательность загруженной из хранилища.
func (l *Ledger) Restore(orders []entities.Order) {
	l.orders = make([]entities.Order, len(orders))
	for i, o := range orders {
		l.orders[i] = o.Clone()
		if n, ok := ParseOrderID(o.ID); ok {
			l.seq.Observe(n)
		}
	}
}

// NextTracking номер отправления. Префикс не пересекается с id заказов.
func (l *Ledger) NextTracking(now time.Time) string {
	return FormatTracking(l.seq.Next(now))
}

func (l *Ledger) find(id string) int {
	for i := range l.orders {
		if l.orders[i].ID == id {
			return i
		}
	}
	return -1
}
