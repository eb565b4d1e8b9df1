package billing

import "github.com/shopspring/decimal"

// escala de los pesos agregados (kg con 3 decimales)
const weightScale = 3

// ComputeWeights agrega los pesos del borrador: Σ(cantidad × peso unitario)
// por línea, redondeado a 3 decimales. Función pura; el borrador la invoca
// tras cada mutación de líneas, de modo que el recálculo siempre pisa las
// ediciones manuales del operador en el siguiente disparo.
func ComputeWeights(lines []Line) (net, gross decimal.Decimal) {
	for _, l := range lines {
		net = net.Add(l.Quantity.Mul(l.UnitNetWeight))
		gross = gross.Add(l.Quantity.Mul(l.UnitGrossWeight))
	}
	return net.Round(weightScale), gross.Round(weightScale)
}
