package memory

import (
	"context"
	"sync"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/receiving"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

var (
	_ billing.TxRunner   = (*TxRunner)(nil)
	_ receiving.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta las funciones transaccionales sobre los repos en memoria.
// Sin rollback real: serializa con un mutex y confía en que fn deje los repos
// consistentes ante error (suficiente para tests).
type TxRunner struct {
	mu       sync.Mutex
	Orders   *OrderRepo
	Invoices *InvoiceRepo
	Products *ProductRepo
	Stock    *StockRepo
	Moves    *MovementRepo
	Receipts *ReceiptRepo
}

func (t *TxRunner) RunBilling(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.Orders, t.Invoices)
}

func (t *TxRunner) RunReceiving(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	receiptRepo repository.GoodsReceiptRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.Moves, t.Stock, t.Products, t.Receipts)
}
