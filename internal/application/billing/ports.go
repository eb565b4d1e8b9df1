package billing

import (
	"context"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos que
// toca la transmisión: la factura se inserta y la orden cambia de estado en
// el mismo commit.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// PDFGenerator renderiza la representación gráfica de una factura emitida
// (reimpresión; solo lectura sobre registros ya persistidos).
type PDFGenerator interface {
	GenerateInvoicePDF(inv *entity.Invoice, store *entity.Store, party *entity.Party) ([]byte, error)
}

// FiscalRenderer renderiza la representación XML fiscal de una factura emitida.
type FiscalRenderer interface {
	RenderInvoiceXML(inv *entity.Invoice, store *entity.Store, party *entity.Party) ([]byte, error)
}
