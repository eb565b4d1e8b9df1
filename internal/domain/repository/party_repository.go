package repository

import "github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"

// PartyRepository puerto de persistencia para entidades comerciales
// (clientes y proveedores).
type PartyRepository interface {
	Create(party *entity.Party) error
	GetByID(id string) (*entity.Party, error)
	Update(party *entity.Party) error
	// ListByStore filtra por tipo si kind no es vacío ("both" matchea siempre).
	ListByStore(storeID, kind string, limit, offset int) ([]*entity.Party, error)
}
