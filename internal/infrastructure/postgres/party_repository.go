package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación de PartyRepository sobre PostgreSQL.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

// Create persiste una entidad comercial.
func (r *PartyRepo) Create(p *entity.Party) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO parties (id, store_id, kind, name, tax_id, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.StoreID, p.Kind, p.Name, p.TaxID, p.Email, p.Phone, p.Address, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("party tax_id already exists: %w", err)
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID obtiene una entidad por ID.
func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	var p entity.Party
	err := r.q.QueryRow(context.Background(), `
		SELECT id, store_id, kind, name, tax_id, email, phone, address, created_at, updated_at
		FROM parties WHERE id = $1`, id).Scan(
		&p.ID, &p.StoreID, &p.Kind, &p.Name, &p.TaxID, &p.Email, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos de contacto y el tipo.
func (r *PartyRepo) Update(p *entity.Party) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE parties
		SET kind = $2, name = $3, tax_id = $4, email = $5, phone = $6, address = $7, updated_at = $8
		WHERE id = $1`,
		p.ID, p.Kind, p.Name, p.TaxID, p.Email, p.Phone, p.Address, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	return nil
}

// ListByStore lista entidades de la tienda; kind vacío no filtra y "both"
// matchea cualquier filtro.
func (r *PartyRepo) ListByStore(storeID, kind string, limit, offset int) ([]*entity.Party, error) {
	query := `
		SELECT id, store_id, kind, name, tax_id, email, phone, address, created_at, updated_at
		FROM parties
		WHERE store_id = $1 AND ($2 = '' OR kind = $2 OR kind = 'both')
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, storeID, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		var p entity.Party
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Kind, &p.Name, &p.TaxID, &p.Email, &p.Phone, &p.Address, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
