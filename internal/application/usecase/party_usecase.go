package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// PartyUseCase CRUD de entidades comerciales (clientes y proveedores).
type PartyUseCase struct {
	partyRepo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(partyRepo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{partyRepo: partyRepo}
}

// Create alta de entidad. Kind debe ser client, supplier o both.
func (uc *PartyUseCase) Create(storeID string, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	switch in.Kind {
	case entity.PartyKindClient, entity.PartyKindSupplier, entity.PartyKindBoth:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Party{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Kind:      in.Kind,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.partyRepo.Create(p); err != nil {
		return nil, err
	}
	return toPartyResponse(p), nil
}

// Update edición de entidad.
func (uc *PartyUseCase) Update(storeID, id string, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	p, err := uc.partyRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if p.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	if in.Kind != "" {
		switch in.Kind {
		case entity.PartyKindClient, entity.PartyKindSupplier, entity.PartyKindBoth:
			p.Kind = in.Kind
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	p.TaxID = in.TaxID
	p.Email = in.Email
	p.Phone = in.Phone
	p.Address = in.Address
	p.UpdatedAt = time.Now()
	if err := uc.partyRepo.Update(p); err != nil {
		return nil, err
	}
	return toPartyResponse(p), nil
}

// GetByID obtiene una entidad de la tienda.
func (uc *PartyUseCase) GetByID(storeID, id string) (*dto.PartyResponse, error) {
	p, err := uc.partyRepo.GetByID(id)
	if err != nil || p == nil {
		return nil, domain.ErrNotFound
	}
	if p.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	return toPartyResponse(p), nil
}

// List lista las entidades de la tienda, con filtro opcional por tipo.
func (uc *PartyUseCase) List(storeID, kind string, page dto.PageRequest) ([]*dto.PartyResponse, error) {
	page.DefaultPage()
	list, err := uc.partyRepo.ListByStore(storeID, kind, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartyResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPartyResponse(p))
	}
	return out, nil
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:      p.ID,
		StoreID: p.StoreID,
		Kind:    p.Kind,
		Name:    p.Name,
		TaxID:   p.TaxID,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}
