package repository

import (
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// ProductRepository puerto de persistencia para el catálogo (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByStoreAndSKU(storeID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCost(productID string, cost decimal.Decimal) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
