package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/stock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAverageCost_PromedioPonderado(t *testing.T) {
	cases := []struct {
		name                                   string
		currentQty, currentCost, inQty, inCost string
		want                                   string
	}{
		{"stock inicial cero", "0", "0", "10", "5.00", "5"},
		{"promedio simple", "10", "4.00", "10", "6.00", "5"},
		{"entrada pequeña mueve poco el costo", "90", "10.00", "10", "20.00", "11"},
		{"mismo costo no cambia", "50", "3.50", "25", "3.50", "3.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.AverageCost(dec(tc.currentQty), dec(tc.currentCost), dec(tc.inQty), dec(tc.inCost))
			assert.True(t, got.Equal(dec(tc.want)), "costo = %s, esperado %s", got, tc.want)
		})
	}
}

func TestAverageCost_SumaNoPositivaEsCero(t *testing.T) {
	assert.True(t, stock.AverageCost(dec("0"), dec("10"), dec("0"), dec("5")).IsZero())
	assert.True(t, stock.AverageCost(dec("-5"), dec("10"), dec("5"), dec("5")).IsZero())
}

func TestConvertToStockUnit(t *testing.T) {
	// caja de 12 unidades: 3 cajas → 36 unidades de stock
	assert.True(t, stock.ConvertToStockUnit(dec("3"), dec("12")).Equal(dec("36")))
	// factor fraccionario: 5 fardos de 0.5 kg → 2.5 kg
	assert.True(t, stock.ConvertToStockUnit(dec("5"), dec("0.5")).Equal(dec("2.5")))
	// factor ≤ 0 equivale a 1
	assert.True(t, stock.ConvertToStockUnit(dec("7"), decimal.Zero).Equal(dec("7")))
	assert.True(t, stock.ConvertToStockUnit(dec("7"), dec("-2")).Equal(dec("7")))
}
