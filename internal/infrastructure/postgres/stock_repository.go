package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL.
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetLevel obtiene la existencia actual del producto en la tienda.
// Sin fila registrada devuelve (nil, nil): existencia cero.
func (r *StockRepo) GetLevel(storeID, productID string) (*entity.StockLevel, error) {
	var lvl entity.StockLevel
	err := r.q.QueryRow(context.Background(), `
		SELECT id, store_id, product_id, quantity, updated_at
		FROM stock_levels WHERE store_id = $1 AND product_id = $2`,
		storeID, productID).Scan(&lvl.ID, &lvl.StoreID, &lvl.ProductID, &lvl.Quantity, &lvl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &lvl, nil
}

// UpsertLevel suma delta a la existencia, creando la fila si no existe.
func (r *StockRepo) UpsertLevel(storeID, productID string, delta decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock_levels (id, store_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (store_id, product_id) DO UPDATE
		SET quantity = stock_levels.quantity + EXCLUDED.quantity,
		    updated_at = NOW()`,
		uuid.NewString(), storeID, productID, delta,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}
