package repository

import "github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"

// NoticeRepository puerto de persistencia para avisos de la casa matriz.
type NoticeRepository interface {
	Create(n *entity.Notice) error
	List(limit, offset int) ([]*entity.Notice, error)
}
