package entity

import "github.com/shopspring/decimal"

// Modalidades de flete (quién asume el transporte).
const (
	FreightBySender   = "0" // por cuenta del emisor
	FreightByReceiver = "1" // por cuenta del destinatario
	FreightNone       = "9" // sin flete
)

// FreightInfo datos logísticos del documento. NetWeight/GrossWeight se derivan
// de las líneas × pesos del producto, pero el operador puede sobrescribirlos;
// la próxima recomputación de líneas vuelve a ganar (ver billing.Draft).
type FreightInfo struct {
	Modality      string // ver constantes Freight*
	DeclaredValue decimal.Decimal
	VehiclePlate  string
	NetWeight     decimal.Decimal
	GrossWeight   decimal.Decimal
	Species       string // etiqueta libre del tipo de bulto
	VolumeCount   int
}
