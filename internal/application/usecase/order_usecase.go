package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// OrderUseCase órdenes de venta que alimentan el flujo de facturación.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository, partyRepo repository.PartyRepository, productRepo repository.ProductRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo, partyRepo: partyRepo, productRepo: productRepo}
}

// CreateOrder crea una orden en estado pending_billing. Precio unitario cero
// toma el precio de catálogo del producto.
func (uc *OrderUseCase) CreateOrder(storeID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.PartyID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	party, err := uc.partyRepo.GetByID(in.PartyID)
	if err != nil || party == nil {
		return nil, domain.ErrNotFound
	}
	if party.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	if !party.IsClient() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		PartyID:   in.PartyID,
		Number:    in.Number,
		Status:    entity.OrderStatusPendingBilling,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if order.Number == "" {
		order.Number = fmt.Sprintf("OV-%d", now.Unix())
	}
	for _, it := range in.Items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil || p == nil {
			return nil, domain.ErrNotFound
		}
		if p.StoreID != storeID {
			return nil, domain.ErrForbidden
		}
		price := it.UnitPrice
		if price.IsZero() {
			price = p.Price
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   it.ProductID,
			ProductName: p.Name,
			Quantity:    it.Quantity,
			UnitPrice:   price,
			TotalPrice:  it.Quantity.Mul(price),
		})
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetOrder obtiene una orden con sus líneas.
func (uc *OrderUseCase) GetOrder(storeID, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(order), nil
}

// ListOrders lista las órdenes de la tienda, con filtro opcional por estado.
func (uc *OrderUseCase) ListOrders(storeID, status string, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.ListByStore(storeID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:        o.ID,
		StoreID:   o.StoreID,
		PartyID:   o.PartyID,
		Number:    o.Number,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
		Items:     make([]dto.OrderItemResponse, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp
}
