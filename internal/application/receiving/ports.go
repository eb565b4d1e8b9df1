package receiving

import (
	"context"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos que
// toca la entrada de mercancía: movimiento, existencia, costo del producto y
// el documento de recepción comparten commit (atomicidad: un ítem que falla
// revierte toda la entrada).
type TxRunner interface {
	RunReceiving(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error) error
}
