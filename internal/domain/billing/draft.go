package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// Estados del borrador de facturación. Transición lineal sin estado de error:
// Review → Processing → Success. Solo Success persiste algo.
type State string

const (
	StateReview     State = "review"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
)

// Line línea editable del borrador. Los pesos unitarios se copian del catálogo
// al crear el borrador; la agregación de pesos no vuelve a leer el catálogo.
type Line struct {
	ProductID       string
	ProductName     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal // Quantity × UnitPrice, recalculado en cada edición
	UnitNetWeight   decimal.Decimal
	UnitGrossWeight decimal.Decimal
}

// Draft borrador de facturación de una orden. Vive solo en memoria: cerrarlo
// antes de Success descarta todo. Sin control de concurrencia entre clientes:
// el último en escribir gana sobre el estado de la orden.
type Draft struct {
	ID            string
	StoreID       string
	OrderID       string
	PartyID       string
	State         State
	Lines         []Line
	Freight       entity.FreightInfo
	Discount      decimal.Decimal
	FreightCharge decimal.Decimal
	PaymentTerm   string
	PaymentMethod string
	CreatedAt     time.Time
}

// NewDraft arma el borrador desde la orden y el catálogo. Las líneas copian
// cantidad y precio de la orden y los pesos unitarios del producto; si el
// producto no está en el catálogo los pesos quedan en cero.
func NewDraft(order *entity.Order, products map[string]*entity.Product) *Draft {
	d := &Draft{
		ID:            uuid.New().String(),
		StoreID:       order.StoreID,
		OrderID:       order.ID,
		PartyID:       order.PartyID,
		State:         StateReview,
		PaymentTerm:   TermCash,
		PaymentMethod: MethodCash,
		Freight:       entity.FreightInfo{Modality: entity.FreightNone},
		CreatedAt:     time.Now(),
	}
	for _, it := range order.Items {
		line := Line{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.Quantity.Mul(it.UnitPrice),
		}
		if p, ok := products[it.ProductID]; ok {
			line.UnitNetWeight = p.NetWeight
			line.UnitGrossWeight = p.GrossWeight
		}
		d.Lines = append(d.Lines, line)
	}
	d.syncWeights()
	return d
}

// syncWeights recalcula los pesos del flete desde las líneas. Pisa cualquier
// edición manual previa del operador: el recálculo siempre gana.
func (d *Draft) syncWeights() {
	d.Freight.NetWeight, d.Freight.GrossWeight = ComputeWeights(d.Lines)
}

// UpdateQuantity reemplaza la cantidad de la línea y recalcula su total.
// Cantidad negativa o índice fuera de rango → no-op silencioso. No valida
// contra el stock disponible: facturar menos que lo ordenado (corte) o de
// más es decisión del operador.
func (d *Draft) UpdateQuantity(index int, qty decimal.Decimal) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	if qty.IsNegative() {
		return
	}
	d.Lines[index].Quantity = qty
	d.Lines[index].TotalPrice = qty.Mul(d.Lines[index].UnitPrice)
	d.syncWeights()
}

// RemoveLine elimina la línea incondicionalmente y recalcula los pesos.
func (d *Draft) RemoveLine(index int) {
	if index < 0 || index >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	d.syncWeights()
}

// SetFreightInfo aplica los datos logísticos editados por el operador,
// incluidos los pesos manuales. Se conservan hasta la próxima mutación de
// líneas, cuando syncWeights los sobrescribe.
func (d *Draft) SetFreightInfo(f entity.FreightInfo) {
	d.Freight = f
}

// SetDiscount fija el descuento plano. Sin validación de signo.
func (d *Draft) SetDiscount(v decimal.Decimal) {
	d.Discount = v
}

// SetFreightCharge fija el valor del flete que suma al total.
func (d *Draft) SetFreightCharge(v decimal.Decimal) {
	d.FreightCharge = v
}

// SetPaymentTerm cambia el plazo. Si el plazo menciona "days", el medio de
// pago queda forzado a boleto bancario.
func (d *Draft) SetPaymentTerm(term string) {
	d.PaymentTerm = term
	if TermForcesBankSlip(term) {
		d.PaymentMethod = MethodBankSlip
	}
}

// SetPaymentMethod cambia el medio de pago, salvo que el plazo vigente lo
// tenga bloqueado en boleto (no-op en ese caso).
func (d *Draft) SetPaymentMethod(method string) {
	if TermForcesBankSlip(d.PaymentTerm) {
		return
	}
	d.PaymentMethod = method
}

// Subtotal suma de los totales de línea.
func (d *Draft) Subtotal() decimal.Decimal {
	return Subtotal(d.Lines)
}

// Total subtotal − descuento + flete, fijado en cero si queda negativo.
func (d *Draft) Total() decimal.Decimal {
	return Total(d.Subtotal(), d.Discount, d.FreightCharge)
}

// Installments plan de cuotas vigente para el total y plazo actuales.
func (d *Draft) Installments(now time.Time) []Installment {
	return Schedule(d.Total(), d.PaymentTerm, now)
}
