package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una factura. Solo existe "issued": la colección es append-only,
// nunca se actualiza ni se borra desde el flujo de facturación.
const (
	InvoiceStatusIssued = "issued"
)

// Invoice representa la factura fiscal generada por la transmisión de una orden.
// Number/Series son inmutables tras la creación. TaxAmount es un 18% fijo del
// total (marcador de posición del cálculo tributario real, sin conciliación de
// redondeo). DueDate es la fecha de la última cuota del plazo elegido.
type Invoice struct {
	ID            string
	StoreID       string
	OrderID       string
	PartyID       string // cliente
	Number        int64
	Series        string
	IssueDate     time.Time
	DueDate       time.Time
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	FreightCharge decimal.Decimal
	TotalAmount   decimal.Decimal
	TaxAmount     decimal.Decimal
	Status        string // InvoiceStatusIssued
	PaymentTerm   string
	PaymentMethod string
	Freight       FreightInfo
	Items         []InvoiceItem
	CreatedAt     time.Time
}

// InvoiceItem es una línea de la factura, copiada del borrador en la transmisión.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
