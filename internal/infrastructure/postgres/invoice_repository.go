package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Colección append-only: no hay UPDATE ni DELETE.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, store_id, order_id, party_id, number, series, issue_date, due_date,
	subtotal, discount, freight_charge, total_amount, tax_amount, status,
	payment_term, payment_method,
	freight_modality, freight_declared_value, freight_vehicle_plate,
	freight_net_weight, freight_gross_weight, freight_species, freight_volume_count,
	created_at`

// Create persiste cabecera y líneas.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	ctx := context.Background()
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.StoreID, inv.OrderID, inv.PartyID, inv.Number, inv.Series,
		inv.IssueDate, inv.DueDate,
		inv.Subtotal, inv.Discount, inv.FreightCharge, inv.TotalAmount, inv.TaxAmount, inv.Status,
		inv.PaymentTerm, inv.PaymentMethod,
		inv.Freight.Modality, inv.Freight.DeclaredValue, nullIfEmpty(inv.Freight.VehiclePlate),
		inv.Freight.NetWeight, inv.Freight.GrossWeight, nullIfEmpty(inv.Freight.Species), inv.Freight.VolumeCount,
		inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for _, it := range inv.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, product_id, product_name, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, it.InvoiceID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una factura completa con sus líneas.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil || inv == nil {
		return inv, err
	}
	items, err := r.itemsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// ListByStore lista las facturas de la tienda (cabeceras, sin líneas).
func (r *InvoiceRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE store_id = $1 ORDER BY issue_date DESC, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// NextNumber siguiente consecutivo de la serie en la tienda. MAX+1 sin
// constraint de unicidad: dos transmisiones concurrentes pueden repetir
// número.
func (r *InvoiceRepo) NextNumber(storeID, series string) (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(number), 0) + 1 FROM invoices WHERE store_id = $1 AND series = $2`,
		storeID, series).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return next, nil
}

func (r *InvoiceRepo) itemsOf(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, invoice_id, product_id, product_name, quantity, unit_price, total_price
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var items []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var plate, species *string
	err := row.Scan(
		&inv.ID, &inv.StoreID, &inv.OrderID, &inv.PartyID, &inv.Number, &inv.Series,
		&inv.IssueDate, &inv.DueDate,
		&inv.Subtotal, &inv.Discount, &inv.FreightCharge, &inv.TotalAmount, &inv.TaxAmount, &inv.Status,
		&inv.PaymentTerm, &inv.PaymentMethod,
		&inv.Freight.Modality, &inv.Freight.DeclaredValue, &plate,
		&inv.Freight.NetWeight, &inv.Freight.GrossWeight, &species, &inv.Freight.VolumeCount,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Freight.VehiclePlate = derefStr(plate)
	inv.Freight.Species = derefStr(species)
	return &inv, nil
}
