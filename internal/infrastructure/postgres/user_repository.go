package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL. Los permisos
// se guardan como JSONB (ver entity.PermissionSet).
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, store_id, email, password_hash, name, role, status, permissions, created_at, updated_at`

// Create registra un usuario nuevo.
func (r *UserRepo) Create(u *entity.User) error {
	perms, err := json.Marshal(u.Permissions)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.StoreID, u.Email, u.PasswordHash, u.Name, u.Role, u.Status, perms, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}

// FindByEmail busca por email sin filtrar por tienda (login de usuarios master).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return r.scanUser(row)
}

// GetByEmailAndStore busca un usuario de la tienda por email.
func (r *UserRepo) GetByEmailAndStore(email, storeID string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), `
		SELECT `+userColumns+` FROM users WHERE email = $1 AND store_id = $2`, email, storeID)
	return r.scanUser(row)
}

// ListByStore lista los usuarios de la tienda.
func (r *UserRepo) ListByStore(storeID string, limit, offset int) ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+userColumns+` FROM users
		WHERE store_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdatePermissions reemplaza el conjunto de permisos del usuario.
func (r *UserRepo) UpdatePermissions(userID string, perms entity.PermissionSet) error {
	raw, err := json.Marshal(perms)
	if err != nil {
		return fmt.Errorf("marshal permissions: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `
		UPDATE users SET permissions = $2, updated_at = NOW() WHERE id = $1`, userID, raw)
	if err != nil {
		return fmt.Errorf("update permissions: %w", err)
	}
	return nil
}

func (r *UserRepo) scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u       entity.User
		storeID *string
		raw     []byte
	)
	err := row.Scan(&u.ID, &storeID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &raw, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.StoreID = derefStr(storeID)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &u.Permissions); err != nil {
			return nil, fmt.Errorf("unmarshal permissions: %w", err)
		}
	}
	return &u, nil
}
