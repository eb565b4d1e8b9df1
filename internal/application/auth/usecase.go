package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
	"github.com/LieTttv/PDVomnierp-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, storeRepo repository.StoreRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, storeRepo: storeRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: valida la tienda y los permisos contra la
// enumeración cerrada de módulos, hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe en esa tienda.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleOperator
	}
	if role != entity.RoleMaster {
		if in.StoreID == "" {
			return nil, domain.ErrInvalidInput
		}
		store, err := uc.storeRepo.GetByID(in.StoreID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.ErrNotFound // la tienda no existe
		}
	}

	existing, _ := uc.userRepo.GetByEmailAndStore(in.Email, in.StoreID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	// Permisos: master y admin reciben el conjunto completo si no se envía
	// nada; el resto se valida registro por registro.
	var perms entity.PermissionSet
	if len(in.Permissions) == 0 && (role == entity.RoleMaster || role == entity.RoleAdmin) {
		perms = entity.FullPermissionSet()
	} else {
		var err error
		perms, err = entity.NewPermissionSet(in.Permissions)
		if err != nil {
			return nil, domain.ErrUnknownModule
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		StoreID:      in.StoreID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		Permissions:  perms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.StoreID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetPermissions devuelve el conjunto de permisos del usuario (para el
// middleware de permisos por módulo).
func (uc *AuthUseCase) GetPermissions(userID string) (entity.PermissionSet, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return entity.PermissionSet{}, err
	}
	if user == nil {
		return entity.PermissionSet{}, domain.ErrUserNotFound
	}
	return user.Permissions, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		StoreID:     u.StoreID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Status:      u.Status,
		Permissions: u.Permissions.List(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
