package entity

import "time"

// Estados de una tienda (tenant).
const (
	StoreStatusActive    = "active"
	StoreStatusSuspended = "suspended"
	StoreStatusInactive  = "inactive"
)

// Store representa una tienda/tenant de la plataforma. La casa matriz (HQ)
// las administra; cada tienda tiene sus propios usuarios, catálogo y documentos.
type Store struct {
	ID        string
	Name      string
	TaxID     string // identificación fiscal de la tienda
	Address   string
	Phone     string
	Email     string
	Status    string // ver constantes StoreStatus*
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Módulos SaaS disponibles. Enumeración cerrada: cualquier otro nombre es inválido
// (deben coincidir con el CHECK de la tabla store_modules).
const (
	ModuleBilling   = "billing"
	ModuleOrders    = "orders"
	ModuleCatalog   = "catalog"
	ModuleReceiving = "receiving"
	ModuleEntities  = "entities"
	ModuleLogistics = "logistics"
	ModuleAdmin     = "admin"
)

// AllModules devuelve la lista cerrada de módulos conocidos.
func AllModules() []string {
	return []string{
		ModuleBilling, ModuleOrders, ModuleCatalog, ModuleReceiving,
		ModuleEntities, ModuleLogistics, ModuleAdmin,
	}
}

// IsValidModule informa si el nombre pertenece a la enumeración cerrada.
func IsValidModule(name string) bool {
	switch name {
	case ModuleBilling, ModuleOrders, ModuleCatalog, ModuleReceiving,
		ModuleEntities, ModuleLogistics, ModuleAdmin:
		return true
	}
	return false
}

// StoreModule representa la activación de un módulo SaaS en una tienda.
type StoreModule struct {
	ID          string
	StoreID     string
	ModuleName  string // ver constantes Module*
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sin vencimiento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
