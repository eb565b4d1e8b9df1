package postgres

import (
	"context"
	"fmt"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.NoticeRepository = (*NoticeRepo)(nil)

// NoticeRepo implementación de NoticeRepository sobre PostgreSQL.
type NoticeRepo struct {
	q Querier
}

func NewNoticeRepository(q Querier) *NoticeRepo {
	return &NoticeRepo{q: q}
}

// Create publica un aviso de la casa matriz.
func (r *NoticeRepo) Create(n *entity.Notice) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO notices (id, title, body, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.Title, n.Body, n.PublishedAt, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notice: %w", err)
	}
	return nil
}

// List devuelve los avisos, del más reciente al más antiguo.
func (r *NoticeRepo) List(limit, offset int) ([]*entity.Notice, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, title, body, published_at, created_at
		FROM notices ORDER BY published_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notice
	for rows.Next() {
		var n entity.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.PublishedAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
