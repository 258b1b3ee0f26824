package entities

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Cost        decimal.Decimal // закупочная цена, только для расчета прибыли
	Category    string
	Description string
	MainImage   string
	Gallery     []string
	Rating      float64
	Sales       int
	Stock       int
}

func (p Product) Clone() Product {
	p.Gallery = slices.Clone(p.Gallery)
	return p
}

type CartLine struct {
	Product
	Quantity int
}

func (l CartLine) Amount() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l CartLine) CostAmount() decimal.Decimal {
	return l.Cost.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l CartLine) Clone() CartLine {
	l.Product = l.Product.Clone()
	return l
}
