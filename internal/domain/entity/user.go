package entity

import "time"

// Roles válidos para User. Los roles supervisor y admin pueden co-firmar
// operaciones escaladas; operario requiere co-firma según la política.
const (
	RolOperario   = "operario"
	RolSupervisor = "supervisor"
	RolAdmin      = "admin"
)

// User representa un usuario del sistema (operarios de bodega, supervisores
// y administración).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	PinHash      string // bcrypt hash del PIN de co-firma; vacío para operarios
	Nombre       string
	Rol          string // operario, supervisor, admin
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PuedeCofirmar indica si el rol del usuario autoriza co-firmas.
func (u *User) PuedeCofirmar() bool {
	return u.Rol == RolSupervisor || u.Rol == RolAdmin
}
