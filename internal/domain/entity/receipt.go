package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoodsReceipt representa la entrada de mercancía de una factura de proveedor.
// Cada ítem convierte la unidad de compra a la unidad de stock mediante un
// factor de conversión y recalcula el costo promedio del producto.
type GoodsReceipt struct {
	ID         string
	StoreID    string
	SupplierID string
	Number     string // número del documento del proveedor
	ReceivedAt time.Time
	Items      []GoodsReceiptItem
	CreatedAt  time.Time
}

// GoodsReceiptItem es una línea de entrada. StockQuantity = PurchasedQty × ConversionFactor.
type GoodsReceiptItem struct {
	ID               string
	ReceiptID        string
	ProductID        string
	PurchasedQty     decimal.Decimal
	PurchasedUnit    string // unidad del proveedor (CX, FD, KG...)
	ConversionFactor decimal.Decimal // unidades de stock por unidad de compra
	StockQuantity    decimal.Decimal
	UnitCost         decimal.Decimal // costo por unidad de stock
}
