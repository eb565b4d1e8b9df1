package billing

import (
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// InvoiceUseCase consultas y reimpresión de facturas emitidas. La colección es
// append-only: aquí no hay escrituras.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	storeRepo   repository.StoreRepository
	partyRepo   repository.PartyRepository
	pdf         PDFGenerator
	fiscal      FiscalRenderer
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	storeRepo repository.StoreRepository,
	partyRepo repository.PartyRepository,
	pdf PDFGenerator,
	fiscal FiscalRenderer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		storeRepo:   storeRepo,
		partyRepo:   partyRepo,
		pdf:         pdf,
		fiscal:      fiscal,
	}
}

// GetInvoice obtiene una factura por ID con sus líneas.
func (uc *InvoiceUseCase) GetInvoice(storeID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(storeID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// ListInvoices lista las facturas de la tienda.
func (uc *InvoiceUseCase) ListInvoices(storeID string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.ListByStore(storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// ReprintPDF genera la representación gráfica de una factura ya emitida.
func (uc *InvoiceUseCase) ReprintPDF(storeID, id string) ([]byte, error) {
	inv, store, party, err := uc.loadWithRefs(storeID, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateInvoicePDF(inv, store, party)
}

// ReprintXML genera la representación XML fiscal de una factura ya emitida.
func (uc *InvoiceUseCase) ReprintXML(storeID, id string) ([]byte, error) {
	inv, store, party, err := uc.loadWithRefs(storeID, id)
	if err != nil {
		return nil, err
	}
	return uc.fiscal.RenderInvoiceXML(inv, store, party)
}

func (uc *InvoiceUseCase) load(storeID, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

func (uc *InvoiceUseCase) loadWithRefs(storeID, id string) (*entity.Invoice, *entity.Store, *entity.Party, error) {
	inv, err := uc.load(storeID, id)
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := uc.storeRepo.GetByID(inv.StoreID)
	if err != nil || store == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	party, err := uc.partyRepo.GetByID(inv.PartyID)
	if err != nil || party == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	return inv, store, party, nil
}
