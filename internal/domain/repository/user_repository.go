package repository

import "github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndStore(email, storeID string) (*entity.User, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.User, error)
	UpdatePermissions(userID string, perms entity.PermissionSet) error
}
