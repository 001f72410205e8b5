package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un SKU de bebida (caja, six-pack, garrafón, etc.).
type Producto struct {
	ID               string
	SKU              string
	Nombre           string
	Presentacion     string // ej. "caja 24", "garrafón 20L"
	Precio           decimal.Decimal
	EnvaseRetornable bool
	DepositoEnvase   decimal.Decimal // depósito sugerido por envase, 0 si no retorna
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
