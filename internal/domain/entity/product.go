package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una tienda.
// Cost es promedio ponderado recalculado por las entradas de mercancía;
// NetWeight/GrossWeight son pesos unitarios usados por la agregación de pesos
// del borrador de facturación.
type Product struct {
	ID          string
	StoreID     string
	SKU         string // código único por tienda
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Cost        decimal.Decimal // costo promedio ponderado (inicia en 0)
	Unit        string          // unidad de stock (UN, KG, CX...)
	NetWeight   decimal.Decimal // peso neto unitario (kg)
	GrossWeight decimal.Decimal // peso bruto unitario (kg)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
