// Package auth cubre registro, login y la verificación de credenciales de
// co-firma. El núcleo de inventario solo registra la identidad del
// supervisor; la confianza se establece aquí, antes de invocarlo.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
	"github.com/distrisur/bodega-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y co-firma.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password (y PIN si es supervisor/admin)
// con bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolOperario
	}
	pinHash := ""
	if in.PIN != "" {
		if rol == entity.RolOperario {
			return nil, domain.ErrInvalidInput // los operarios no co-firman
		}
		ph, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		pinHash = string(ph)
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		PinHash:      pinHash,
		Nombre:       nombre,
		Rol:          rol,
		Estado:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Email: user.Email, Nombre: user.Nombre, Rol: user.Rol}, nil
}

// Login valida credenciales y devuelve un JWT con el rol en los claims.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Estado != "active" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Email: user.Email, Nombre: user.Nombre, Rol: user.Rol},
	}, nil
}

// VerificarSupervisor valida el PIN de co-firma de un supervisor o admin.
// Devuelve ErrForbidden si el usuario no existe, no puede co-firmar o el PIN
// no coincide. Los casos de uso de inventario reciben la identidad ya
// verificada: nunca re-derivan la confianza.
func (uc *AuthUseCase) VerificarSupervisor(supervisorID, pin string) error {
	if supervisorID == "" || pin == "" {
		return domain.ErrForbidden
	}
	supervisor, err := uc.userRepo.GetByID(supervisorID)
	if err != nil {
		return err
	}
	if supervisor == nil || supervisor.Estado != "active" || !supervisor.PuedeCofirmar() || supervisor.PinHash == "" {
		return domain.ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(supervisor.PinHash), []byte(pin)) != nil {
		return domain.ErrForbidden
	}
	return nil
}
