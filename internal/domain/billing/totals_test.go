package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSubtotal_SumaTotalesDeLinea(t *testing.T) {
	lines := []billing.Line{
		{TotalPrice: dec("299.00")},
		{TotalPrice: dec("1.50")},
	}
	assert.True(t, billing.Subtotal(lines).Equal(dec("300.50")))
}

func TestSubtotal_SinLineasEsCero(t *testing.T) {
	assert.True(t, billing.Subtotal(nil).IsZero())
}

func TestTotal_DescuentoYFlete(t *testing.T) {
	cases := []struct {
		name                        string
		subtotal, discount, freight string
		want                        string
	}{
		{"sin ajustes", "100.00", "0", "0", "100.00"},
		{"descuento plano", "100.00", "10.00", "0", "90.00"},
		{"flete suma", "100.00", "0", "25.00", "125.00"},
		{"descuento y flete", "100.00", "10.00", "25.00", "115.00"},
		{"descuento mayor al subtotal se fija en cero", "100.00", "150.00", "0", "0"},
		{"flete compensa descuento excesivo", "100.00", "150.00", "60.00", "10.00"},
		// descuento negativo aceptado sin validar: incrementa el total
		{"descuento negativo suma", "100.00", "-10.00", "0", "110.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.Total(dec(tc.subtotal), dec(tc.discount), dec(tc.freight))
			assert.True(t, got.Equal(dec(tc.want)), "total = %s, esperado %s", got, tc.want)
		})
	}
}

func TestTaxAmount_DieciochoPorCientoFijo(t *testing.T) {
	assert.True(t, billing.TaxAmount(dec("299.00")).Equal(dec("53.82")))
	assert.True(t, billing.TaxAmount(decimal.Zero).IsZero())
}

func TestComputeWeights_SumaYRedondeaATresDecimales(t *testing.T) {
	lines := []billing.Line{
		{Quantity: dec("3"), UnitNetWeight: dec("0.3333"), UnitGrossWeight: dec("0.4")},
		{Quantity: dec("2"), UnitNetWeight: dec("1.5"), UnitGrossWeight: dec("1.75")},
	}
	net, gross := billing.ComputeWeights(lines)
	// 3×0.3333 + 2×1.5 = 3.9999 → 4.000
	assert.True(t, net.Equal(dec("4")), "neto = %s", net)
	// 3×0.4 + 2×1.75 = 4.7
	assert.True(t, gross.Equal(dec("4.7")), "bruto = %s", gross)
}
