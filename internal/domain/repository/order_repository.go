package repository

import "github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"

// OrderRepository puerto de persistencia para órdenes de venta.
// SetStatus es la única escritura que hace el flujo de facturación sobre la
// orden (pending_billing → billed); no hay token de concurrencia: el último
// en escribir gana.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// ListByStore filtra por estado si status no es vacío.
	ListByStore(storeID, status string, limit, offset int) ([]*entity.Order, error)
	SetStatus(id, status string) error
}
