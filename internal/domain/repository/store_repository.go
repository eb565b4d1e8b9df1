package repository

import (
	"context"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// StoreRepository puerto de persistencia para tiendas y sus módulos SaaS.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	List(limit, offset int) ([]*entity.Store, error)
	SetStatus(id, status string) error

	// ActivateModule activa (o reactiva) un módulo para la tienda.
	ActivateModule(mod *entity.StoreModule) error
	ListModules(storeID string) ([]*entity.StoreModule, error)
	// HasActiveModule informa si la tienda tiene el módulo activo y sin vencer.
	// Error solo ante fallos de infraestructura.
	HasActiveModule(ctx context.Context, storeID, moduleName string) (bool, error)
}
