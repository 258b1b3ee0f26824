package projection_test

import (
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/royal-shop/internal/entities"
	"github.com/SergeyBogomolovv/royal-shop/internal/projection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, amount, cost int64, status entities.OrderStatus) entities.Order {
	a, c := decimal.NewFromInt(amount), decimal.NewFromInt(cost)
	return entities.Order{ID: id, TotalAmount: a, TotalCost: c, Profit: a.Sub(c), Status: status}
}

func TestDashboard(t *testing.T) {
	orders := []entities.Order{
		order("ORD-1003", 300, 100, entities.StatusPendingPayment),
		order("ORD-1002", 200, 60, entities.StatusProcessing),
		order("ORD-1001", 100, 30, entities.StatusPendingPayment),
	}

	d := projection.BuildDashboard(orders)

	assert.True(t, decimal.NewFromInt(600).Equal(d.Revenue))
	assert.True(t, decimal.NewFromInt(410).Equal(d.Profit))
	assert.Equal(t, 2, d.PendingPayment)
	assert.Equal(t, 1, d.Processing)
	assert.Equal(t, 3, d.TotalOrders)

	require.Len(t, d.Series, 3)
	assert.Equal(t, "1001", d.Series[0].Label)
	assert.Equal(t, "1003", d.Series[2].Label)
}

func TestDashboard_Empty(t *testing.T) {
	d := projection.BuildDashboard(nil)
	assert.True(t, d.Revenue.IsZero())
	assert.True(t, d.Profit.IsZero())
	assert.Empty(t, d.Series)
}

func TestSeries_TakesMostRecent(t *testing.T) {
	orders := make([]entities.Order, 0, 15)
	for i := 15; i > 0; i-- {
		orders = append(orders, order(fmt.Sprintf("ORD-%04d", i), int64(i), 0, entities.StatusCompleted))
	}

	points := projection.Series(orders, projection.SeriesSize)
	require.Len(t, points, 10)
	assert.Equal(t, "0006", points[0].Label)
	assert.Equal(t, "0015", points[9].Label)
	assert.True(t, decimal.NewFromInt(15).Equal(points[9].Amount))
}

func TestSeries_Bounds(t *testing.T) {
	orders := []entities.Order{
		order("ORD-0002", 2, 0, entities.StatusCompleted),
		order("ORD-0001", 1, 0, entities.StatusCompleted),
	}

	assert.Empty(t, projection.Series(orders, -1))
	assert.Empty(t, projection.Series(orders, 0))
	assert.Empty(t, projection.Series(nil, 5))

	points := projection.Series(orders, 5)
	require.Len(t, points, 2)
	assert.Equal(t, "0001", points[0].Label)
}

func TestSearch(t *testing.T) {
	products := make([]entities.Product, 0, 60)
	for i := range 60 {
		products = append(products, entities.Product{ID: fmt.Sprint(i), Name: fmt.Sprintf("Royal Crown %d", i)})
	}
	products = append(products, entities.Product{ID: "comb", Name: "Pearl comb"})

	testCases := []struct {
		name          string
		query         string
		wantLen       int
		wantTotal     int
		wantTruncated bool
	}{
		{name: "case insensitive and capped", query: "CROWN", wantLen: 50, wantTotal: 60, wantTruncated: true},
		{name: "single match", query: "pearl", wantLen: 1, wantTotal: 1},
		{name: "no match", query: "tiara", wantLen: 0, wantTotal: 0},
		{name: "empty query matches all", query: "", wantLen: 50, wantTotal: 61, wantTruncated: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := projection.Search(products, tc.query, projection.SearchPageSize)
			assert.Len(t, res.Items, tc.wantLen)
			assert.Equal(t, tc.wantTotal, res.Total)
			assert.Equal(t, tc.wantTruncated, res.Truncated)
		})
	}
}

func TestShippingLabel(t *testing.T) {
	o := entities.Order{CustomerName: "Wang", CustomerPhone: "139", Address: "Shanghai"}
	assert.Equal(t, "Wang, 139, Shanghai", projection.ShippingLabel(o))
}
