package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

func TestLineProfit(t *testing.T) {
	testCases := []struct {
		name      string
		sellPrice decimal.Decimal
		costPrice decimal.Decimal
		quantity  int64
		want      decimal.Decimal
	}{
		{
			name:      "standard margin",
			sellPrice: decimal.NewFromInt(150000),
			costPrice: decimal.NewFromInt(80000),
			quantity:  2,
			want:      decimal.NewFromInt(140000),
		},
		{
			name:      "fractional prices keep exact cents",
			sellPrice: decimal.RequireFromString("10.25"),
			costPrice: decimal.RequireFromString("7.10"),
			quantity:  3,
			want:      decimal.RequireFromString("9.45"),
		},
		{
			name:      "selling below cost yields negative profit",
			sellPrice: decimal.NewFromInt(50),
			costPrice: decimal.NewFromInt(80),
			quantity:  1,
			want:      decimal.NewFromInt(-30),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.LineProfit(tc.sellPrice, tc.costPrice, tc.quantity)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestSaleLineAmount(t *testing.T) {
	line := domain.SaleLine{
		Quantity:  4,
		SellPrice: decimal.RequireFromString("15000.50"),
	}
	assert.True(t, line.Amount().Equal(decimal.RequireFromString("60002.00")))
}

func TestProductIsLowStock(t *testing.T) {
	p := domain.Product{StockQty: 10, AlertLevel: 10}
	assert.True(t, p.IsLowStock(), "at the alert level counts as low")

	p.StockQty = 11
	assert.False(t, p.IsLowStock())

	p.StockQty = 0
	assert.True(t, p.IsLowStock())
}
