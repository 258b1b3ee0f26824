package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrInvalidCustomerDetails = errors.New("invalid customer details")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrEmptyCart              = errors.New("cart is empty")
)

// Outcome сообщает, изменила ли операция состояние.
// Операции над неизвестными id или при нехватке остатка не возвращают ошибку,
// вместо этого вызывающий получает Outcome.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeIgnoredUnknownID
	OutcomeIgnoredStockCeiling
	OutcomeIgnoredOutOfStock
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeIgnoredUnknownID:
		return "ignored_unknown_id"
	case OutcomeIgnoredStockCeiling:
		return "ignored_stock_ceiling"
	case OutcomeIgnoredOutOfStock:
		return "ignored_out_of_stock"
	default:
		return "unknown"
	}
}

func (o Outcome) Applied() bool {
	return o == OutcomeApplied
}

func init() {
	// деньги в JSON - числа, как в сохраненных заказах витрины
	decimal.MarshalJSONWithoutQuotes = true
}
