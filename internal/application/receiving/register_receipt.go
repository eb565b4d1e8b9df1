package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/stock"
)

// RegisterReceiptUseCase registra la entrada de una factura de proveedor:
// convierte la unidad de compra a unidad de stock, suma existencia y recalcula
// el costo promedio ponderado de cada producto, todo en una transacción.
type RegisterReceiptUseCase struct {
	txRunner    TxRunner
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
}

// NewRegisterReceiptUseCase construye el caso de uso.
func NewRegisterReceiptUseCase(
	txRunner TxRunner,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
) *RegisterReceiptUseCase {
	return &RegisterReceiptUseCase{
		txRunner:    txRunner,
		partyRepo:   partyRepo,
		productRepo: productRepo,
	}
}

// RegisterReceipt valida y persiste la entrada completa.
func (uc *RegisterReceiptUseCase) RegisterReceipt(ctx context.Context, storeID, userID string, in dto.RegisterReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.partyRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	if !supplier.IsSupplier() {
		return nil, domain.ErrInvalidInput
	}

	// Validación de ítems fuera de la transacción (solo lectura).
	for _, it := range in.Items {
		if it.ProductID == "" || !it.PurchasedQty.GreaterThan(decimal.Zero) || it.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil || p == nil {
			return nil, domain.ErrNotFound
		}
		if p.StoreID != storeID {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	receipt := &entity.GoodsReceipt{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		SupplierID: in.SupplierID,
		Number:     in.Number,
		ReceivedAt: now,
		CreatedAt:  now,
	}

	err = uc.txRunner.RunReceiving(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error {
		for _, it := range in.Items {
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil || product == nil {
				return domain.ErrNotFound
			}

			stockQty := stock.ConvertToStockUnit(it.PurchasedQty, it.ConversionFactor)

			// Costo promedio ponderado sobre la existencia previa a la entrada.
			var currentQty decimal.Decimal
			if level, err := stockRepo.GetLevel(storeID, it.ProductID); err != nil {
				return err
			} else if level != nil {
				currentQty = level.Quantity
			}
			newCost := stock.AverageCost(currentQty, product.Cost, stockQty, it.UnitCost)

			if err := movRepo.Create(&entity.StockMovement{
				ID:        uuid.New().String(),
				StoreID:   storeID,
				ProductID: it.ProductID,
				Type:      entity.MovementIN,
				Quantity:  stockQty,
				UnitCost:  it.UnitCost,
				Reference: receipt.ID,
				UserID:    userID,
				CreatedAt: now,
			}); err != nil {
				return err
			}
			if err := stockRepo.UpsertLevel(storeID, it.ProductID, stockQty); err != nil {
				return err
			}
			if err := productRepo.UpdateCost(it.ProductID, newCost); err != nil {
				return err
			}

			receipt.Items = append(receipt.Items, entity.GoodsReceiptItem{
				ID:               uuid.New().String(),
				ReceiptID:        receipt.ID,
				ProductID:        it.ProductID,
				PurchasedQty:     it.PurchasedQty,
				PurchasedUnit:    it.PurchasedUnit,
				ConversionFactor: it.ConversionFactor,
				StockQuantity:    stockQty,
				UnitCost:         it.UnitCost,
			})
		}
		return receiptRepo.Create(receipt)
	})
	if err != nil {
		return nil, err
	}

	return toReceiptResponse(receipt), nil
}

func toReceiptResponse(r *entity.GoodsReceipt) *dto.ReceiptResponse {
	resp := &dto.ReceiptResponse{
		ID:         r.ID,
		StoreID:    r.StoreID,
		SupplierID: r.SupplierID,
		Number:     r.Number,
		ReceivedAt: r.ReceivedAt.Format("2006-01-02"),
		Items:      make([]dto.ReceiptItemResponse, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, dto.ReceiptItemResponse{
			ID:               it.ID,
			ProductID:        it.ProductID,
			PurchasedQty:     it.PurchasedQty,
			PurchasedUnit:    it.PurchasedUnit,
			ConversionFactor: it.ConversionFactor,
			StockQuantity:    it.StockQuantity,
			UnitCost:         it.UnitCost,
		})
	}
	return resp
}
