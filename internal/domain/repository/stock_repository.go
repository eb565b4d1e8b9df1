package repository

import (
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// StockRepository puerto de persistencia para existencias por tienda.
type StockRepository interface {
	GetLevel(storeID, productID string) (*entity.StockLevel, error)
	// UpsertLevel crea el nivel si no existe o suma delta al existente.
	UpsertLevel(storeID, productID string, delta decimal.Decimal) error
}

// StockMovementRepository registro inmutable de entradas y salidas.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByProduct(storeID, productID string, limit, offset int) ([]*entity.StockMovement, error)
}

// GoodsReceiptRepository puerto de persistencia para entradas de mercancía.
type GoodsReceiptRepository interface {
	Create(r *entity.GoodsReceipt) error
	GetByID(id string) (*entity.GoodsReceipt, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.GoodsReceipt, error)
}
