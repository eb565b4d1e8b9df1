package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.GoodsReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de GoodsReceiptRepository sobre PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste la entrada con sus ítems. Se asume dentro de una
// transacción (ver TxRunner.RunReceiving).
func (r *ReceiptRepo) Create(rec *entity.GoodsReceipt) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO goods_receipts (id, store_id, supplier_id, number, received_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.StoreID, rec.SupplierID, rec.Number, rec.ReceivedAt, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert goods receipt: %w", err)
	}
	for _, it := range rec.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO goods_receipt_items (id, receipt_id, product_id, purchased_qty, purchased_unit, conversion_factor, stock_quantity, unit_cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, it.ReceiptID, it.ProductID, it.PurchasedQty, it.PurchasedUnit, it.ConversionFactor, it.StockQuantity, it.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert receipt item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la entrada con sus ítems.
func (r *ReceiptRepo) GetByID(id string) (*entity.GoodsReceipt, error) {
	var rec entity.GoodsReceipt
	err := r.q.QueryRow(context.Background(), `
		SELECT id, store_id, supplier_id, number, received_at, created_at
		FROM goods_receipts WHERE id = $1`, id).Scan(
		&rec.ID, &rec.StoreID, &rec.SupplierID, &rec.Number, &rec.ReceivedAt, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goods receipt: %w", err)
	}
	items, err := r.itemsOf(rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Items = items
	return &rec, nil
}

// ListByStore lista entradas de la tienda (solo cabeceras).
func (r *ReceiptRepo) ListByStore(storeID string, limit, offset int) ([]*entity.GoodsReceipt, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, store_id, supplier_id, number, received_at, created_at
		FROM goods_receipts
		WHERE store_id = $1 ORDER BY received_at DESC LIMIT $2 OFFSET $3`,
		storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list goods receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.GoodsReceipt
	for rows.Next() {
		var rec entity.GoodsReceipt
		if err := rows.Scan(&rec.ID, &rec.StoreID, &rec.SupplierID, &rec.Number, &rec.ReceivedAt, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goods receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *ReceiptRepo) itemsOf(receiptID string) ([]entity.GoodsReceiptItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, receipt_id, product_id, purchased_qty, purchased_unit, conversion_factor, stock_quantity, unit_cost
		FROM goods_receipt_items WHERE receipt_id = $1`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt items: %w", err)
	}
	defer rows.Close()
	var items []entity.GoodsReceiptItem
	for rows.Next() {
		var it entity.GoodsReceiptItem
		if err := rows.Scan(&it.ID, &it.ReceiptID, &it.ProductID, &it.PurchasedQty, &it.PurchasedUnit, &it.ConversionFactor, &it.StockQuantity, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
