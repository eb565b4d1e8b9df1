package receiving

import (
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// StockQueryUseCase consultas de solo lectura sobre recepciones, existencias
// y kardex. Fuera de la transacción de registro: lee el estado ya persistido.
type StockQueryUseCase struct {
	receiptRepo  repository.GoodsReceiptRepository
	stockRepo    repository.StockRepository
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewStockQueryUseCase construye el caso de uso de consultas.
func NewStockQueryUseCase(
	receiptRepo repository.GoodsReceiptRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{
		receiptRepo:  receiptRepo,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// GetReceipt devuelve una recepción con sus líneas.
func (uc *StockQueryUseCase) GetReceipt(storeID, id string) (*dto.ReceiptResponse, error) {
	r, err := uc.receiptRepo.GetByID(id)
	if err != nil || r == nil {
		return nil, domain.ErrNotFound
	}
	if r.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	return toReceiptResponse(r), nil
}

// ListReceipts lista las recepciones de la tienda, más recientes primero.
func (uc *StockQueryUseCase) ListReceipts(storeID string, limit, offset int) ([]*dto.ReceiptResponse, error) {
	receipts, err := uc.receiptRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, toReceiptResponse(r))
	}
	return out, nil
}

// StockLevel devuelve la existencia actual de un producto. Producto sin nivel
// registrado → cantidad cero (no es un error).
func (uc *StockQueryUseCase) StockLevel(storeID, productID string) (*dto.StockLevelResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.StoreID != storeID {
		return nil, domain.ErrForbidden
	}

	resp := &dto.StockLevelResponse{
		ProductID: productID,
		Quantity:  decimal.Zero,
		Unit:      product.Unit,
	}
	level, err := uc.stockRepo.GetLevel(storeID, productID)
	if err != nil {
		return nil, err
	}
	if level != nil {
		resp.Quantity = level.Quantity
	}
	return resp, nil
}

// Kardex lista los movimientos de un producto, más recientes primero.
func (uc *StockQueryUseCase) Kardex(storeID, productID string, limit, offset int) ([]dto.MovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.StoreID != storeID {
		return nil, domain.ErrForbidden
	}

	moves, err := uc.movementRepo.ListByProduct(storeID, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		Reference: m.Reference,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
