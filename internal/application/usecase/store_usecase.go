package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// StoreUseCase consola HQ: administración de tiendas y activación de módulos SaaS.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo}
}

// CreateStore alta de tienda. Nace activa y sin módulos: HQ los activa aparte.
func (uc *StoreUseCase) CreateStore(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" || in.TaxID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    entity.StoreStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetStore obtiene una tienda por ID.
func (uc *StoreUseCase) GetStore(id string) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil || store == nil {
		return nil, domain.ErrNotFound
	}
	return toStoreResponse(store), nil
}

// ListStores lista las tiendas de la plataforma.
func (uc *StoreUseCase) ListStores(page dto.PageRequest) ([]*dto.StoreResponse, error) {
	page.DefaultPage()
	list, err := uc.storeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStoreResponse(s))
	}
	return out, nil
}

// SetStatus suspende o reactiva una tienda.
func (uc *StoreUseCase) SetStatus(id, status string) error {
	switch status {
	case entity.StoreStatusActive, entity.StoreStatusSuspended, entity.StoreStatusInactive:
	default:
		return domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(id)
	if err != nil || store == nil {
		return domain.ErrNotFound
	}
	return uc.storeRepo.SetStatus(id, status)
}

// ActivateModule activa un módulo SaaS para la tienda. El nombre debe
// pertenecer a la enumeración cerrada.
func (uc *StoreUseCase) ActivateModule(storeID string, in dto.ActivateModuleRequest) error {
	if !entity.IsValidModule(in.ModuleName) {
		return domain.ErrUnknownModule
	}
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil || store == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	return uc.storeRepo.ActivateModule(&entity.StoreModule{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		ModuleName:  in.ModuleName,
		IsActive:    true,
		ActivatedAt: now,
		ExpiresAt:   in.ExpiresAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// ListModules lista los módulos contratados por la tienda.
func (uc *StoreUseCase) ListModules(storeID string) ([]*dto.StoreModuleResponse, error) {
	mods, err := uc.storeRepo.ListModules(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StoreModuleResponse, 0, len(mods))
	for _, m := range mods {
		out = append(out, &dto.StoreModuleResponse{
			ModuleName:  m.ModuleName,
			IsActive:    m.IsActive,
			ActivatedAt: m.ActivatedAt.Format(time.RFC3339),
			ExpiresAt:   m.ExpiresAt,
		})
	}
	return out, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		TaxID:     s.TaxID,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
