// Package projection содержит чистые функции для консоли продавца:
// выручка, прибыль, счетчики статусов, график и поиск по каталогу.
package projection

import (
	"strings"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	SeriesSize      = 10
	SearchPageSize  = 50
	seriesLabelSize = 4
)

type Point struct {
	Label  string
	Amount decimal.Decimal
	Profit decimal.Decimal
}

type Dashboard struct {
	Revenue        decimal.Decimal
	Profit         decimal.Decimal
	PendingPayment int
	Processing     int
	TotalOrders    int
	Series         []Point
}

type SearchResult struct {
	Items     []entities.Product
	Total     int
	Truncated bool
}

func TotalRevenue(orders []entities.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.TotalAmount)
	}
	return sum
}

func TotalProfit(orders []entities.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(o.Profit)
	}
	return sum
}

func CountByStatus(orders []entities.Order, status entities.OrderStatus) int {
	n := 0
	for _, o := range orders {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Series берет n последних заказов (orders отсортированы от новых к старым)
// и возвращает их в хронологическом порядке.
func Series(orders []entities.Order, n int) []Point {
	n = max(min(n, len(orders)), 0)
	points := make([]Point, n)
	for i := range n {
		o := orders[n-1-i]
		points[i] = Point{
			Label:  seriesLabel(o.ID),
			Amount: o.TotalAmount,
			Profit: o.Profit,
		}
	}
	return points
}

func seriesLabel(id string) string {
	r := []rune(id)
	if len(r) <= seriesLabelSize {
		return id
	}
	return string(r[len(r)-seriesLabelSize:])
}

func BuildDashboard(orders []entities.Order) Dashboard {
	return Dashboard{
		Revenue:        TotalRevenue(orders),
		Profit:         TotalProfit(orders),
		PendingPayment: CountByStatus(orders, entities.StatusPendingPayment),
		Processing:     CountByStatus(orders, entities.StatusProcessing),
		TotalOrders:    len(orders),
		Series:         Series(orders, SeriesSize),
	}
}

// Search ищет по подстроке в названии без учета регистра.
func Search(products []entities.Product, query string, limit int) SearchResult {
	q := strings.ToLower(query)
	res := SearchResult{Items: make([]entities.Product, 0)}
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		res.Total++
		if len(res.Items) < limit {
			res.Items = append(res.Items, p)
		}
	}
	res.Truncated = res.Total > len(res.Items)
	return res
}

// ShippingLabel строка адреса для заказа у поставщика.
func ShippingLabel(o entities.Order) string {
	return strings.Join([]string{o.CustomerName, o.CustomerPhone, o.Address}, ", ")
}
