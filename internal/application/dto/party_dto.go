package dto

// CreatePartyRequest alta de entidad comercial (cliente, proveedor o ambos).
type CreatePartyRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PartyResponse entidad comercial.
type PartyResponse struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
