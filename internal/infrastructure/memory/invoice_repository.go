package memory

import (
	"sort"
	"sync"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct {
	mu       sync.RWMutex
	invoices map[string]*entity.Invoice
}

func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inv
	cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	cp.Items = append([]entity.InvoiceItem(nil), inv.Items...)
	return &cp, nil
}

func (r *InvoiceRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.StoreID != storeID {
			continue
		}
		cp := *inv
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Number > list[j].Number })
	return paginate(list, limit, offset), nil
}

// NextNumber replica el MAX+1 del adaptador PostgreSQL, incluida la
// posibilidad de números repetidos bajo concurrencia externa a este lock.
func (r *InvoiceRepo) NextNumber(storeID, series string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for _, inv := range r.invoices {
		if inv.StoreID == storeID && inv.Series == series && inv.Number > max {
			max = inv.Number
		}
	}
	return max + 1, nil
}
