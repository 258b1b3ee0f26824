package cart

import (
	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/shopspring/decimal"
)

// Cart текущая корзина покупателя. Строки уникальны по id товара
// и хранятся в порядке добавления. Не потокобезопасна.
type Cart struct {
	lines []entities.CartLine
	index map[string]int
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add добавляет единицу товара. item должен нести живой остаток из каталога:
// количество в корзине не поднимается выше item.Stock.
func (c *Cart) Add(item entities.Product) entities.Outcome {
	if item.Stock <= 0 {
		return entities.OutcomeIgnoredOutOfStock
	}

	i, ok := c.index[item.ID]
	if !ok {
		c.index[item.ID] = len(c.lines)
		c.lines = append(c.lines, entities.CartLine{Product: item.Clone(), Quantity: 1})
		return entities.OutcomeApplied
	}

	if c.lines[i].Quantity >= item.Stock {
		return entities.OutcomeIgnoredStockCeiling
	}
	c.lines[i].Quantity++
	return entities.OutcomeApplied
}

func (c *Cart) Remove(id string) entities.Outcome {
	i, ok := c.index[id]
	if !ok {
		return entities.OutcomeIgnoredUnknownID
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ID] = j
	}
	return entities.OutcomeApplied
}

func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

func (c *Cart) Lines() []entities.CartLine {
	res := make([]entities.CartLine, len(c.lines))
	for i, l := range c.lines {
		res[i] = l.Clone()
	}
	return res
}

func (c *Cart) Quantity(id string) int {
	i, ok := c.index[id]
	if !ok {
		return 0
	}
	return c.lines[i].Quantity
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Amount())
	}
	return total
}
