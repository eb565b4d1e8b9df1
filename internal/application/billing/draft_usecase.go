package billing

import (
	"context"
	"time"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	domainbilling "github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// DraftUseCase maneja el ciclo de edición del borrador de facturación:
// abrir desde una orden liberada, editar líneas/flete/pago y descartar.
// Toda mutación devuelve el estado completo recalculado (totales, pesos, cuotas).
type DraftUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	sessions    *DraftSessions
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, sessions *DraftSessions) *DraftUseCase {
	return &DraftUseCase{orderRepo: orderRepo, productRepo: productRepo, sessions: sessions}
}

// StartDraft abre el borrador de una orden pendiente de facturar. Copia las
// líneas de la orden y los pesos unitarios del catálogo (lectura única: el
// borrador no vuelve a mirar el catálogo si este cambia después).
func (uc *DraftUseCase) StartDraft(ctx context.Context, storeID, orderID string) (*dto.DraftResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	if order.Status != entity.OrderStatusPendingBilling {
		return nil, domain.ErrOrderAlreadyBilled
	}

	products := make(map[string]*entity.Product, len(order.Items))
	for _, it := range order.Items {
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			products[it.ProductID] = p
		}
	}

	d := domainbilling.NewDraft(order, products)
	uc.sessions.Put(d)
	return toDraftResponse(d), nil
}

// GetDraft devuelve el estado vigente del borrador.
func (uc *DraftUseCase) GetDraft(storeID, draftID string) (*dto.DraftResponse, error) {
	return uc.mutate(storeID, draftID, func(d *domainbilling.Draft) error { return nil })
}

// UpdateQuantity edita la cantidad de una línea. Cantidad negativa → no-op
// (contrato del editor de líneas).
func (uc *DraftUseCase) UpdateQuantity(storeID, draftID string, in dto.UpdateQuantityRequest) (*dto.DraftResponse, error) {
	return uc.mutateEditable(storeID, draftID, func(d *domainbilling.Draft) {
		d.UpdateQuantity(in.Index, in.Quantity)
	})
}

// RemoveLine elimina una línea incondicionalmente.
func (uc *DraftUseCase) RemoveLine(storeID, draftID string, index int) (*dto.DraftResponse, error) {
	return uc.mutateEditable(storeID, draftID, func(d *domainbilling.Draft) {
		d.RemoveLine(index)
	})
}

// SetDiscount fija el descuento plano.
func (uc *DraftUseCase) SetDiscount(storeID, draftID string, in dto.SetDiscountRequest) (*dto.DraftResponse, error) {
	return uc.mutateEditable(storeID, draftID, func(d *domainbilling.Draft) {
		d.SetDiscount(in.Discount)
	})
}

// SetFreightCharge fija el valor del flete.
func (uc *DraftUseCase) SetFreightCharge(storeID, draftID string, in dto.SetFreightChargeRequest) (*dto.DraftResponse, error) {
	return uc.mutateEditable(storeID, draftID, func(d *domainbilling.Draft) {
		d.SetFreightCharge(in.FreightCharge)
	})
}

// SetPayment cambia plazo y medio de pago. El medio se ignora mientras el
// plazo vigente lo fuerce a boleto.
func (uc *DraftUseCase) SetPayment(storeID, draftID string, in dto.SetPaymentRequest) (*dto.DraftResponse, error) {
	return uc.mutateEditable(storeID, draftID, func(d *domainbilling.Draft) {
		if in.Term != "" {
			d.SetPaymentTerm(in.Term)
		}
		if in.Method != "" {
			d.SetPaymentMethod(in.Method)
		}
	})
}

// SetFreightInfo aplica los datos logísticos editados, pesos manuales incluidos.
func (uc *DraftUseCase) SetFreightInfo(storeID, draftID string, in dto.FreightInfoRequest) (*dto.DraftResponse, error) {
	return uc.mutateEditable(storeID, draftID, func(d *domainbilling.Draft) {
		d.SetFreightInfo(entity.FreightInfo{
			Modality:      in.Modality,
			DeclaredValue: in.DeclaredValue,
			VehiclePlate:  in.VehiclePlate,
			NetWeight:     in.NetWeight,
			GrossWeight:   in.GrossWeight,
			Species:       in.Species,
			VolumeCount:   in.VolumeCount,
		})
	})
}

// Discard cierra la sesión sin persistir nada.
func (uc *DraftUseCase) Discard(storeID, draftID string) {
	uc.sessions.Delete(storeID, draftID)
}

func (uc *DraftUseCase) mutate(storeID, draftID string, fn func(*domainbilling.Draft) error) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := uc.sessions.Mutate(storeID, draftID, func(d *domainbilling.Draft) error {
		if err := fn(d); err != nil {
			return err
		}
		resp = toDraftResponse(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// mutateEditable rechaza ediciones cuando el borrador ya salió de Review.
func (uc *DraftUseCase) mutateEditable(storeID, draftID string, fn func(*domainbilling.Draft)) (*dto.DraftResponse, error) {
	return uc.mutate(storeID, draftID, func(d *domainbilling.Draft) error {
		if d.State != domainbilling.StateReview {
			return domain.ErrDraftNotEditable
		}
		fn(d)
		return nil
	})
}

func toDraftResponse(d *domainbilling.Draft) *dto.DraftResponse {
	resp := &dto.DraftResponse{
		ID:            d.ID,
		OrderID:       d.OrderID,
		PartyID:       d.PartyID,
		State:         string(d.State),
		Freight:       toFreightResponse(d.Freight),
		Discount:      d.Discount,
		FreightCharge: d.FreightCharge,
		PaymentTerm:   d.PaymentTerm,
		PaymentMethod: d.PaymentMethod,
		Subtotal:      d.Subtotal(),
		Total:         d.Total(),
		Lines:         make([]dto.DraftLineResponse, 0, len(d.Lines)),
	}
	for _, l := range d.Lines {
		resp.Lines = append(resp.Lines, dto.DraftLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
		})
	}
	for _, inst := range d.Installments(time.Now()) {
		resp.Installments = append(resp.Installments, dto.InstallmentResponse{
			DueDate: inst.DueDate.Format("2006-01-02"),
			Amount:  inst.Amount,
		})
	}
	return resp
}

func toFreightResponse(f entity.FreightInfo) dto.FreightInfoResponse {
	return dto.FreightInfoResponse{
		Modality:      f.Modality,
		DeclaredValue: f.DeclaredValue,
		VehiclePlate:  f.VehiclePlate,
		NetWeight:     f.NetWeight,
		GrossWeight:   f.GrossWeight,
		Species:       f.Species,
		VolumeCount:   f.VolumeCount,
	}
}
