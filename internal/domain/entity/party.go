package entity

import "time"

// Tipos de entidad comercial.
const (
	PartyKindClient   = "client"
	PartyKindSupplier = "supplier"
	PartyKindBoth     = "both"
)

// Party representa una entidad comercial de la tienda: cliente, proveedor o ambos.
type Party struct {
	ID        string
	StoreID   string
	Kind      string // ver constantes PartyKind*
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClient informa si la entidad puede figurar como cliente de una factura.
func (p *Party) IsClient() bool {
	return p.Kind == PartyKindClient || p.Kind == PartyKindBoth
}

// IsSupplier informa si la entidad puede figurar como proveedor de una entrada.
func (p *Party) IsSupplier() bool {
	return p.Kind == PartyKindSupplier || p.Kind == PartyKindBoth
}
