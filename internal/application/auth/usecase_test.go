package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func nuevoUseCase() (*fakeUserRepo, *AuthUseCase) {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	uc := NewAuthUseCase(repo, JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "bodega-api-test"})
	return repo, uc
}

func TestRegisterUser_Operario(t *testing.T) {
	repo, uc := nuevoUseCase()

	res, err := uc.RegisterUser(dto.RegisterRequest{Email: "juan@bodega.mx", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolOperario, res.Rol, "rol por defecto")

	guardado := repo.users[res.ID]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "secreta123", guardado.PasswordHash, "nunca se persiste en plano")
	assert.Empty(t, guardado.PinHash)
}

func TestRegisterUser_OperarioConPIN_Rechazado(t *testing.T) {
	_, uc := nuevoUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "juan@bodega.mx", Password: "secreta123", PIN: "4821"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	_, uc := nuevoUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "juan@bodega.mx", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "juan@bodega.mx", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_DevuelveTokenConRol(t *testing.T) {
	_, uc := nuevoUseCase()
	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "sup@bodega.mx", Password: "secreta123", Rol: entity.RolSupervisor, PIN: "4821"})
	require.NoError(t, err)

	res, err := uc.Login(dto.LoginRequest{Email: "sup@bodega.mx", Password: "secreta123"})
	require.NoError(t, err)

	userID, rol, err := jwt.Parse("test-secret", res.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RolSupervisor, rol)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	_, uc := nuevoUseCase()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "juan@bodega.mx", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "juan@bodega.mx", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@bodega.mx", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerificarSupervisor(t *testing.T) {
	repo, uc := nuevoUseCase()
	sup, err := uc.RegisterUser(dto.RegisterRequest{Email: "sup@bodega.mx", Password: "secreta123", Rol: entity.RolSupervisor, PIN: "4821"})
	require.NoError(t, err)
	op, err := uc.RegisterUser(dto.RegisterRequest{Email: "op@bodega.mx", Password: "secreta123"})
	require.NoError(t, err)

	assert.NoError(t, uc.VerificarSupervisor(sup.ID, "4821"))
	assert.ErrorIs(t, uc.VerificarSupervisor(sup.ID, "0000"), domain.ErrForbidden, "PIN incorrecto")
	assert.ErrorIs(t, uc.VerificarSupervisor(op.ID, "4821"), domain.ErrForbidden, "operario no co-firma")
	assert.ErrorIs(t, uc.VerificarSupervisor("", "4821"), domain.ErrForbidden)
	assert.ErrorIs(t, uc.VerificarSupervisor("no-existe", "4821"), domain.ErrForbidden)

	// usuario suspendido pierde la co-firma
	repo.users[sup.ID].Estado = "suspended"
	assert.ErrorIs(t, uc.VerificarSupervisor(sup.ID, "4821"), domain.ErrForbidden)
}
