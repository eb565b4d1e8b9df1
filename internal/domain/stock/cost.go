package stock

import "github.com/shopspring/decimal"

// AverageCost costo promedio ponderado tras una entrada (servicio de dominio).
// NuevoCosto = ((StockActual × CostoActual) + (CantEntrada × CostoEntrada)) / (StockActual + CantEntrada)
func AverageCost(currentQty, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := currentQty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := currentQty.Mul(currentCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}

// ConvertToStockUnit convierte la cantidad comprada a unidades de stock.
// Factor ≤ 0 se trata como 1 (sin conversión).
func ConvertToStockUnit(purchasedQty, factor decimal.Decimal) decimal.Decimal {
	if factor.LessThanOrEqual(decimal.Zero) {
		return purchasedQty
	}
	return purchasedQty.Mul(factor)
}
