package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create registra una tienda nueva.
func (r *StoreRepo) Create(s *entity.Store) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stores (id, name, tax_id, address, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("store tax_id already exists: %w", err)
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(context.Background(), `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM stores WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List devuelve las tiendas paginadas (consola HQ).
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, tax_id, address, phone, email, status, created_at, updated_at
		FROM stores ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetStatus cambia el estado de la tienda (active/suspended/inactive).
func (r *StoreRepo) SetStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE stores SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("set store status: %w", err)
	}
	return nil
}

// ActivateModule activa (o reactiva) un módulo de la tienda. Upsert por
// (store_id, module_name): reactivar renueva el vencimiento.
func (r *StoreRepo) ActivateModule(m *entity.StoreModule) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO store_modules (id, store_id, module_name, is_active, activated_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (store_id, module_name) DO UPDATE
		SET is_active = EXCLUDED.is_active,
		    activated_at = EXCLUDED.activated_at,
		    expires_at = EXCLUDED.expires_at,
		    updated_at = EXCLUDED.updated_at`,
		m.ID, m.StoreID, m.ModuleName, m.IsActive, m.ActivatedAt, m.ExpiresAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("activate module: %w", err)
	}
	return nil
}

// ListModules devuelve los módulos registrados de la tienda.
func (r *StoreRepo) ListModules(storeID string) ([]*entity.StoreModule, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, store_id, module_name, is_active, activated_at, expires_at, created_at, updated_at
		FROM store_modules WHERE store_id = $1 ORDER BY module_name`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list store modules: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreModule
	for rows.Next() {
		var m entity.StoreModule
		if err := rows.Scan(&m.ID, &m.StoreID, &m.ModuleName, &m.IsActive, &m.ActivatedAt, &m.ExpiresAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// HasActiveModule verifica activación vigente: is_active y sin vencimiento
// o con vencimiento futuro.
func (r *StoreRepo) HasActiveModule(ctx context.Context, storeID, moduleName string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM store_modules
			WHERE store_id = $1 AND module_name = $2 AND is_active
			  AND (expires_at IS NULL OR expires_at > NOW())
		)`, storeID, moduleName).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check module activation: %w", err)
	}
	return ok, nil
}
