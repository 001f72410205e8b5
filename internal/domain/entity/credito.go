package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un crédito.
const (
	CreditoAbierto = "ABIERTO"
	CreditoSaldado = "SALDADO"
)

// Métodos de pago de un abono.
const (
	MetodoEfectivo      = "EFECTIVO"
	MetodoTransferencia = "TRANSFERENCIA"
)

// Credito representa el saldo pendiente de un pedido vendido a crédito.
// Un crédito es dueño de sus abonos.
type Credito struct {
	ID        string
	ClienteID string
	PedidoID  string
	Monto     decimal.Decimal
	Saldo     decimal.Decimal
	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Abono es un pago parcial o total aplicado a un crédito.
type Abono struct {
	ID        string
	CreditoID string
	Monto     decimal.Decimal
	Metodo    string // EFECTIVO, TRANSFERENCIA
	UsuarioID string
	Fecha     time.Time
}
