package dto

import (
	"github.com/shopspring/decimal"
)

// StartDraftRequest abre el borrador de facturación de una orden liberada.
type StartDraftRequest struct {
	OrderID string `json:"order_id"`
}

// UpdateQuantityRequest edita la cantidad de una línea del borrador.
type UpdateQuantityRequest struct {
	Index    int             `json:"index"`
	Quantity decimal.Decimal `json:"quantity"`
}

// SetDiscountRequest descuento plano sobre el subtotal.
type SetDiscountRequest struct {
	Discount decimal.Decimal `json:"discount"`
}

// SetFreightChargeRequest valor del flete que suma al total.
type SetFreightChargeRequest struct {
	FreightCharge decimal.Decimal `json:"freight_charge"`
}

// SetPaymentRequest plazo y medio de pago. Si el plazo menciona "days" el
// medio queda forzado a boleto y Method se ignora.
type SetPaymentRequest struct {
	Term   string `json:"term"`
	Method string `json:"method"`
}

// FreightInfoRequest datos logísticos editados por el operador.
type FreightInfoRequest struct {
	Modality      string          `json:"modality"`
	DeclaredValue decimal.Decimal `json:"declared_value"`
	VehiclePlate  string          `json:"vehicle_plate"`
	NetWeight     decimal.Decimal `json:"net_weight"`
	GrossWeight   decimal.Decimal `json:"gross_weight"`
	Species       string          `json:"species"`
	VolumeCount   int             `json:"volume_count"`
}

// FreightInfoResponse eco de los datos logísticos vigentes.
type FreightInfoResponse struct {
	Modality      string          `json:"modality"`
	DeclaredValue decimal.Decimal `json:"declared_value"`
	VehiclePlate  string          `json:"vehicle_plate"`
	NetWeight     decimal.Decimal `json:"net_weight"`
	GrossWeight   decimal.Decimal `json:"gross_weight"`
	Species       string          `json:"species"`
	VolumeCount   int             `json:"volume_count"`
}

// DraftLineResponse línea del borrador.
type DraftLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// InstallmentResponse una cuota del plan de pago vigente.
type InstallmentResponse struct {
	DueDate string          `json:"due_date"` // YYYY-MM-DD
	Amount  decimal.Decimal `json:"amount"`
}

// DraftResponse estado completo del borrador tras cada operación.
type DraftResponse struct {
	ID            string                `json:"id"`
	OrderID       string                `json:"order_id"`
	PartyID       string                `json:"party_id"`
	State         string                `json:"state"`
	Lines         []DraftLineResponse   `json:"lines"`
	Freight       FreightInfoResponse   `json:"freight"`
	Discount      decimal.Decimal       `json:"discount"`
	FreightCharge decimal.Decimal       `json:"freight_charge"`
	PaymentTerm   string                `json:"payment_term"`
	PaymentMethod string                `json:"payment_method"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Total         decimal.Decimal       `json:"total"`
	Installments  []InstallmentResponse `json:"installments"`
}

// InvoiceItemResponse línea de la factura emitida.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// InvoiceResponse factura emitida por la transmisión.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	StoreID       string                `json:"store_id"`
	OrderID       string                `json:"order_id"`
	PartyID       string                `json:"party_id"`
	Number        int64                 `json:"number"`
	Series        string                `json:"series"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Discount      decimal.Decimal       `json:"discount"`
	FreightCharge decimal.Decimal       `json:"freight_charge"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	Status        string                `json:"status"`
	PaymentTerm   string                `json:"payment_term"`
	PaymentMethod string                `json:"payment_method"`
	Freight       FreightInfoResponse   `json:"freight"`
	Items         []InvoiceItemResponse `json:"items"`
}
