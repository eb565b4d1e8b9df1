package dto

import "github.com/shopspring/decimal"

// OrderItemRequest línea de una orden nueva. Si UnitPrice es cero se toma el
// precio de catálogo del producto.
type OrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest crea una orden de venta lista para facturar.
type CreateOrderRequest struct {
	PartyID string             `json:"party_id"`
	Number  string             `json:"number"`
	Items   []OrderItemRequest `json:"items"`
}

// OrderItemResponse línea de la orden.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse orden con sus líneas.
type OrderResponse struct {
	ID        string              `json:"id"`
	StoreID   string              `json:"store_id"`
	PartyID   string              `json:"party_id"`
	Number    string              `json:"number"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt string              `json:"created_at"`
}
