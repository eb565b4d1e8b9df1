package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación en memoria de StoreRepository.
type StoreRepo struct {
	mu      sync.RWMutex
	stores  map[string]*entity.Store
	modules map[string]*entity.StoreModule // clave storeID+"/"+moduleName
}

func NewStoreRepository() *StoreRepo {
	return &StoreRepo{
		stores:  make(map[string]*entity.Store),
		modules: make(map[string]*entity.StoreModule),
	}
}

func (r *StoreRepo) Create(s *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.stores[s.ID] = &cp
	return nil
}

func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Store
	for _, s := range r.stores {
		cp := *s
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *StoreRepo) SetStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[id]; ok {
		s.Status = status
		s.UpdatedAt = time.Now()
	}
	return nil
}

func (r *StoreRepo) ActivateModule(m *entity.StoreModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.modules[m.StoreID+"/"+m.ModuleName] = &cp
	return nil
}

func (r *StoreRepo) ListModules(storeID string) ([]*entity.StoreModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.StoreModule
	for _, m := range r.modules {
		if m.StoreID != storeID {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ModuleName < list[j].ModuleName })
	return list, nil
}

func (r *StoreRepo) HasActiveModule(_ context.Context, storeID, moduleName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modules[storeID+"/"+moduleName]
	if !ok || !m.IsActive {
		return false, nil
	}
	if m.ExpiresAt != nil && !m.ExpiresAt.After(time.Now()) {
		return false, nil
	}
	return true, nil
}
