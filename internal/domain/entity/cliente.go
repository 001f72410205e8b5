package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente es un comprador (tienda, restaurante, abarrotes).
type Cliente struct {
	ID            string
	Nombre        string
	RFC           string
	Telefono      string
	Direccion     string
	LimiteCredito decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
