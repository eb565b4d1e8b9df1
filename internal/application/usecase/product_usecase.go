package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos de una tienda.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create alta de producto. SKU único por tienda; Cost inicia en 0 y lo
// recalculan las entradas de mercancía.
func (uc *ProductUseCase) Create(storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.NetWeight.IsNegative() || in.GrossWeight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.productRepo.GetByStoreAndSKU(storeID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	unit := in.Unit
	if unit == "" {
		unit = "UN"
	}
	p := &entity.Product{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Cost:        decimal.Zero,
		Unit:        unit,
		NetWeight:   in.NetWeight,
		GrossWeight: in.GrossWeight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update edición de producto. No toca SKU ni Cost.
func (uc *ProductUseCase) Update(storeID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if p.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	if in.Price.IsNegative() || in.NetWeight.IsNegative() || in.GrossWeight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	p.Description = in.Description
	p.Price = in.Price
	if in.Unit != "" {
		p.Unit = in.Unit
	}
	p.NetWeight = in.NetWeight
	p.GrossWeight = in.GrossWeight
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto de la tienda.
func (uc *ProductUseCase) GetByID(storeID, id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if p.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(p), nil
}

// List lista el catálogo de la tienda.
func (uc *ProductUseCase) List(storeID string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.ListByStore(storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(storeID, id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil || p == nil {
		return domain.ErrNotFound
	}
	if p.StoreID != storeID {
		return domain.ErrForbidden
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Unit:        p.Unit,
		NetWeight:   p.NetWeight,
		GrossWeight: p.GrossWeight,
	}
}
