package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementIN  = "IN"
	MovementOUT = "OUT"
)

// StockLevel existencia actual de un producto en una tienda.
type StockLevel struct {
	ID        string
	StoreID   string
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}

// StockMovement registro inmutable de una entrada o salida de stock.
// Reference apunta al documento que lo originó (recepción o factura).
type StockMovement struct {
	ID        string
	StoreID   string
	ProductID string
	Type      string // MovementIN | MovementOUT
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	Reference string
	UserID    string
	CreatedAt time.Time
}
