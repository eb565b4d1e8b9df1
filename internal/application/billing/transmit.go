package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	domainbilling "github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// TransmitUseCase ejecuta la transmisión fiscal del borrador:
// Review → Processing → Success. La demora de Processing simula el envío al
// fisco y no admite cancelación; Success persiste la factura y marca la orden
// como facturada en una sola transacción. No hay clave de idempotencia: dos
// transmisiones de la misma orden producen dos facturas.
type TransmitUseCase struct {
	sessions *DraftSessions
	txRunner TxRunner
	delay    time.Duration
	series   string
}

// NewTransmitUseCase construye el caso de uso. delay ~2.5 s en producción,
// 0 en tests.
func NewTransmitUseCase(sessions *DraftSessions, txRunner TxRunner, delay time.Duration, series string) *TransmitUseCase {
	if series == "" {
		series = "1"
	}
	return &TransmitUseCase{sessions: sessions, txRunner: txRunner, delay: delay, series: series}
}

// Transmit confirma el borrador. Precondición única: al menos una línea;
// sin líneas se rechaza con ErrEmptyDraft y nada cambia.
func (uc *TransmitUseCase) Transmit(ctx context.Context, storeID, draftID string) (*dto.InvoiceResponse, error) {
	// Fase 1: validar y pasar a Processing bajo el lock de sesiones.
	var snapshot domainbilling.Draft
	err := uc.sessions.Mutate(storeID, draftID, func(d *domainbilling.Draft) error {
		if d.State != domainbilling.StateReview {
			return domain.ErrDraftNotEditable
		}
		if len(d.Lines) == 0 {
			return domain.ErrEmptyDraft
		}
		d.State = domainbilling.StateProcessing
		snapshot = *d
		snapshot.Lines = append([]domainbilling.Line(nil), d.Lines...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fase 2: demora fija simulando la transmisión. Sin cancelación dentro de
	// esta ventana.
	if uc.delay > 0 {
		time.Sleep(uc.delay)
	}

	// Fase 3: armar la factura desde el snapshot. El vencimiento es la fecha
	// de la última cuota; el impuesto es el 18% fijo sin conciliar redondeo.
	now := time.Now()
	total := snapshot.Total()
	installments := snapshot.Installments(now)
	due := installments[len(installments)-1].DueDate

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		StoreID:       snapshot.StoreID,
		OrderID:       snapshot.OrderID,
		PartyID:       snapshot.PartyID,
		Series:        uc.series,
		IssueDate:     now,
		DueDate:       due,
		Subtotal:      snapshot.Subtotal(),
		Discount:      snapshot.Discount,
		FreightCharge: snapshot.FreightCharge,
		TotalAmount:   total,
		TaxAmount:     domainbilling.TaxAmount(total),
		Status:        entity.InvoiceStatusIssued,
		PaymentTerm:   snapshot.PaymentTerm,
		PaymentMethod: snapshot.PaymentMethod,
		Freight:       snapshot.Freight,
		CreatedAt:     now,
	}
	for _, l := range snapshot.Lines {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
		})
	}

	// Fase 4: persistir factura y estado de la orden en la misma transacción.
	err = uc.txRunner.RunBilling(ctx, func(orderRepo repository.OrderRepository, invoiceRepo repository.InvoiceRepository) error {
		number, err := invoiceRepo.NextNumber(inv.StoreID, inv.Series)
		if err != nil {
			return err
		}
		inv.Number = number
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		return orderRepo.SetStatus(inv.OrderID, entity.OrderStatusBilled)
	})
	if err != nil {
		// Fallo de infraestructura: el modal sigue abierto, el borrador vuelve
		// a Review para que el operador reintente.
		_ = uc.sessions.Mutate(storeID, draftID, func(d *domainbilling.Draft) error {
			d.State = domainbilling.StateReview
			return nil
		})
		return nil, err
	}

	_ = uc.sessions.Mutate(storeID, draftID, func(d *domainbilling.Draft) error {
		d.State = domainbilling.StateSuccess
		return nil
	})
	return toInvoiceResponse(inv), nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		StoreID:       inv.StoreID,
		OrderID:       inv.OrderID,
		PartyID:       inv.PartyID,
		Number:        inv.Number,
		Series:        inv.Series,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		Discount:      inv.Discount,
		FreightCharge: inv.FreightCharge,
		TotalAmount:   inv.TotalAmount,
		TaxAmount:     inv.TaxAmount,
		Status:        inv.Status,
		PaymentTerm:   inv.PaymentTerm,
		PaymentMethod: inv.PaymentMethod,
		Freight:       toFreightResponse(inv.Freight),
		Items:         make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp
}
