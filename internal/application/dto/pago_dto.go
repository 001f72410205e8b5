package dto

import "github.com/shopspring/decimal"

// AbonoRequest body para POST /api/creditos/:id/abonos.
type AbonoRequest struct {
	Monto  decimal.Decimal `json:"monto" validate:"required"`
	Metodo string          `json:"metodo" validate:"required,oneof=EFECTIVO TRANSFERENCIA"`
}

// AbonoResponse estado derivado del crédito tras el abono.
type AbonoResponse struct {
	AbonoID       string          `json:"abono_id"`
	Saldo         decimal.Decimal `json:"saldo"`
	CreditoEstado string          `json:"credito_estado"`
	EstadoPago    string          `json:"estado_pago,omitempty"`
}
