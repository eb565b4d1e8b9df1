package dto

import "time"

// CreateStoreRequest alta de tienda (solo HQ).
type CreateStoreRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// StoreResponse tienda de la plataforma.
type StoreResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ActivateModuleRequest activa un módulo SaaS para una tienda (solo HQ).
type ActivateModuleRequest struct {
	ModuleName string     `json:"module_name"`
	ExpiresAt  *time.Time `json:"expires_at"` // nil = sin vencimiento
}

// StoreModuleResponse módulo contratado por la tienda.
type StoreModuleResponse struct {
	ModuleName  string     `json:"module_name"`
	IsActive    bool       `json:"is_active"`
	ActivatedAt string     `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// CreateNoticeRequest aviso de la casa matriz hacia las tiendas.
type CreateNoticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NoticeResponse aviso publicado.
type NoticeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	PublishedAt string `json:"published_at"`
}
