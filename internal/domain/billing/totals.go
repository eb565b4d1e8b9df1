package billing

import "github.com/shopspring/decimal"

// taxRate 18% fijo sobre el total. Es un marcador de posición del cálculo
// tributario real; no concilia residuos de redondeo contra el total.
var taxRate = decimal.RequireFromString("0.18")

// Subtotal suma los totales de línea.
func Subtotal(lines []Line) decimal.Decimal {
	var sum decimal.Decimal
	for _, l := range lines {
		sum = sum.Add(l.TotalPrice)
	}
	return sum
}

// Total aplica descuento y flete sobre el subtotal: max(0, subtotal − descuento + flete).
// Descuento y flete llegan del operador sin validar signo; un total negativo
// se fija en cero.
func Total(subtotal, discount, freightCharge decimal.Decimal) decimal.Decimal {
	t := subtotal.Sub(discount).Add(freightCharge)
	if t.IsNegative() {
		return decimal.Zero
	}
	return t
}

// TaxAmount impuesto fijo del 18% sobre el total.
func TaxAmount(total decimal.Decimal) decimal.Decimal {
	return total.Mul(taxRate)
}
