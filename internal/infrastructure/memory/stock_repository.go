package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var (
	_ repository.StockRepository         = (*StockRepo)(nil)
	_ repository.StockMovementRepository = (*MovementRepo)(nil)
	_ repository.GoodsReceiptRepository  = (*ReceiptRepo)(nil)
)

// StockRepo implementación en memoria de StockRepository.
type StockRepo struct {
	mu     sync.RWMutex
	levels map[string]*entity.StockLevel // clave storeID+"/"+productID
}

func NewStockRepository() *StockRepo {
	return &StockRepo{levels: make(map[string]*entity.StockLevel)}
}

func stockKey(storeID, productID string) string {
	return storeID + "/" + productID
}

func (r *StockRepo) GetLevel(storeID, productID string) (*entity.StockLevel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lvl, ok := r.levels[stockKey(storeID, productID)]
	if !ok {
		return nil, nil
	}
	cp := *lvl
	return &cp, nil
}

func (r *StockRepo) UpsertLevel(storeID, productID string, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := stockKey(storeID, productID)
	if lvl, ok := r.levels[key]; ok {
		lvl.Quantity = lvl.Quantity.Add(delta)
		lvl.UpdatedAt = time.Now()
		return nil
	}
	r.levels[key] = &entity.StockLevel{
		ID:        key,
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  delta,
		UpdatedAt: time.Now(),
	}
	return nil
}

// MovementRepo implementación en memoria de StockMovementRepository.
type MovementRepo struct {
	mu        sync.RWMutex
	movements []*entity.StockMovement
}

func NewMovementRepository() *MovementRepo {
	return &MovementRepo{}
}

func (r *MovementRepo) Create(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *MovementRepo) ListByProduct(storeID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.StockMovement
	for _, m := range r.movements {
		if m.StoreID != storeID || m.ProductID != productID {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

// ReceiptRepo implementación en memoria de GoodsReceiptRepository.
type ReceiptRepo struct {
	mu       sync.RWMutex
	receipts map[string]*entity.GoodsReceipt
}

func NewReceiptRepository() *ReceiptRepo {
	return &ReceiptRepo{receipts: make(map[string]*entity.GoodsReceipt)}
}

func (r *ReceiptRepo) Create(rec *entity.GoodsReceipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	cp.Items = append([]entity.GoodsReceiptItem(nil), rec.Items...)
	r.receipts[rec.ID] = &cp
	return nil
}

func (r *ReceiptRepo) GetByID(id string) (*entity.GoodsReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Items = append([]entity.GoodsReceiptItem(nil), rec.Items...)
	return &cp, nil
}

func (r *ReceiptRepo) ListByStore(storeID string, limit, offset int) ([]*entity.GoodsReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.GoodsReceipt
	for _, rec := range r.receipts {
		if rec.StoreID != storeID {
			continue
		}
		cp := *rec
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ReceivedAt.After(list[j].ReceivedAt) })
	return paginate(list, limit, offset), nil
}
