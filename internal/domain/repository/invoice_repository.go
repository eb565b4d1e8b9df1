package repository

import "github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"

// InvoiceRepository puerto de persistencia para facturas. Colección append-only:
// no hay Update ni Delete; Number/Series son inmutables tras Create.
type InvoiceRepository interface {
	// Create persiste cabecera y líneas.
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.Invoice, error)
	// NextNumber devuelve el siguiente consecutivo de la serie para la tienda.
	// Sin constraint de unicidad cross-cliente: dos transmisiones concurrentes
	// pueden obtener el mismo número.
	NextNumber(storeID, series string) (int64, error)
}
