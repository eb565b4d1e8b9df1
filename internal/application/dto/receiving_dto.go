package dto

import "github.com/shopspring/decimal"

// ReceiptItemRequest línea de entrada de mercancía. La cantidad de stock
// resultante es PurchasedQty × ConversionFactor (factor ≤ 0 equivale a 1).
type ReceiptItemRequest struct {
	ProductID        string          `json:"product_id"`
	PurchasedQty     decimal.Decimal `json:"purchased_qty"`
	PurchasedUnit    string          `json:"purchased_unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	UnitCost         decimal.Decimal `json:"unit_cost"` // costo por unidad de stock
}

// RegisterReceiptRequest registra la entrada de una factura de proveedor.
type RegisterReceiptRequest struct {
	SupplierID string               `json:"supplier_id"`
	Number     string               `json:"number"`
	Items      []ReceiptItemRequest `json:"items"`
}

// ReceiptItemResponse línea registrada.
type ReceiptItemResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	PurchasedQty     decimal.Decimal `json:"purchased_qty"`
	PurchasedUnit    string          `json:"purchased_unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
	StockQuantity    decimal.Decimal `json:"stock_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// ReceiptResponse entrada de mercancía registrada.
type ReceiptResponse struct {
	ID         string                `json:"id"`
	StoreID    string                `json:"store_id"`
	SupplierID string                `json:"supplier_id"`
	Number     string                `json:"number"`
	ReceivedAt string                `json:"received_at"`
	Items      []ReceiptItemResponse `json:"items"`
}

// StockLevelResponse existencia actual de un producto (cero si nunca entró).
type StockLevelResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

// MovementResponse un renglón del kardex.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // IN | OUT
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Reference string          `json:"reference"`
	UserID    string          `json:"user_id"`
	CreatedAt string          `json:"created_at"`
}
