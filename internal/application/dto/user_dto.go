package dto

import (
	"time"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// RegisterRequest alta de usuario de tienda. Permissions se valida contra la
// enumeración cerrada de módulos en la construcción del PermissionSet.
type RegisterRequest struct {
	StoreID     string              `json:"store_id"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Permissions []entity.Permission `json:"permissions"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin datos sensibles.
type UserResponse struct {
	ID          string              `json:"id"`
	StoreID     string              `json:"store_id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Status      string              `json:"status"`
	Permissions []entity.Permission `json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
