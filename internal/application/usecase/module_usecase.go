package usecase

import (
	"context"
	"fmt"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
)

// ModuleService verifica qué módulos SaaS tiene activos una tienda.
// Es el único punto de la aplicación que conoce la lógica de activación.
type ModuleService struct {
	storeRepo repository.StoreRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(storeRepo repository.StoreRepository) *ModuleService {
	return &ModuleService{storeRepo: storeRepo}
}

// HasActiveModule informa si la tienda tiene el módulo activo y sin vencer.
// Devuelve false (sin error) si la tienda no tiene el módulo contratado.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *ModuleService) HasActiveModule(ctx context.Context, storeID, moduleName string) (bool, error) {
	if storeID == "" || moduleName == "" {
		return false, fmt.Errorf("module: storeID y moduleName son obligatorios")
	}
	if !entity.IsValidModule(moduleName) {
		return false, domain.ErrUnknownModule
	}
	return s.storeRepo.HasActiveModule(ctx, storeID, moduleName)
}
