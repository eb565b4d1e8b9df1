// Package memory provee adaptadores en memoria de los puertos de
// persistencia. Se usan en tests y para correr la API sin base de datos.
package memory

import (
	"sync"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria de OrderRepository.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *OrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	r.orders[o.ID] = &cp
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	return &cp, nil
}

func (r *OrderRepo) ListByStore(storeID, status string, limit, offset int) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Order
	for _, o := range r.orders {
		if o.StoreID != storeID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		cp := *o
		cp.Items = append([]entity.OrderItem(nil), o.Items...)
		list = append(list, &cp)
	}
	return paginate(list, limit, offset), nil
}

func (r *OrderRepo) SetStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

// paginate aplica limit/offset sobre una lista ya filtrada.
func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
