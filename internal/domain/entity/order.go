package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta. La facturación solo hace la transición
// pending_billing → billed; el resto del ciclo vive fuera de este flujo.
const (
	OrderStatusPendingBilling = "pending_billing"
	OrderStatusBilled         = "billed"
)

// Order representa una orden de venta liberada para facturar.
type Order struct {
	ID        string
	StoreID   string
	PartyID   string // cliente
	Number    string
	Status    string // ver constantes OrderStatus*
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem es una línea de la orden.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity × UnitPrice
}
