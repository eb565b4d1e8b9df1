package postgres

import (
	"context"
	"fmt"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo registro inmutable de movimientos de stock sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create registra un movimiento. Los movimientos no se actualizan ni borran.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock_movements (id, store_id, product_id, type, quantity, unit_cost, reference, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)`,
		m.ID, m.StoreID, m.ProductID, m.Type, m.Quantity, m.UnitCost, m.Reference, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial de movimientos del producto, del más
// reciente al más antiguo.
func (r *MovementRepo) ListByProduct(storeID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, store_id, product_id, type, quantity, unit_cost, reference, COALESCE(user_id, ''), created_at
		FROM stock_movements
		WHERE store_id = $1 AND product_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		storeID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StoreID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitCost, &m.Reference, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
