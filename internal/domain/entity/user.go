package entity

import "time"

// Roles de usuario. "master" es el operador SaaS (HQ), sin tienda asociada.
const (
	RoleMaster   = "master"
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

// User representa un usuario de una tienda (o de la casa matriz si Role es master).
type User struct {
	ID           string
	StoreID      string // vacío para usuarios master (HQ)
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	Permissions  PermissionSet
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsMaster informa si el usuario pertenece a la casa matriz.
func (u *User) IsMaster() bool {
	return u.Role == RoleMaster
}
