package memory

import (
	"sort"
	"sync"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo implementación en memoria de PartyRepository.
type PartyRepo struct {
	mu      sync.RWMutex
	parties map[string]*entity.Party
}

func NewPartyRepository() *PartyRepo {
	return &PartyRepo{parties: make(map[string]*entity.Party)}
}

func (r *PartyRepo) Create(p *entity.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.parties[p.ID] = &cp
	return nil
}

func (r *PartyRepo) GetByID(id string) (*entity.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parties[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PartyRepo) Update(p *entity.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parties[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.parties[p.ID] = &cp
	return nil
}

func (r *PartyRepo) ListByStore(storeID, kind string, limit, offset int) ([]*entity.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Party
	for _, p := range r.parties {
		if p.StoreID != storeID {
			continue
		}
		if kind != "" && p.Kind != kind && p.Kind != entity.PartyKindBoth {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}
