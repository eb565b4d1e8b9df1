package memory

import (
	"sort"
	"sync"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.NoticeRepository = (*NoticeRepo)(nil)

// NoticeRepo implementación en memoria de NoticeRepository.
type NoticeRepo struct {
	mu      sync.RWMutex
	notices []*entity.Notice
}

func NewNoticeRepository() *NoticeRepo {
	return &NoticeRepo{}
}

func (r *NoticeRepo) Create(n *entity.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.notices = append(r.notices, &cp)
	return nil
}

func (r *NoticeRepo) List(limit, offset int) ([]*entity.Notice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Notice
	for _, n := range r.notices {
		cp := *n
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PublishedAt.After(list[j].PublishedAt) })
	return paginate(list, limit, offset), nil
}
