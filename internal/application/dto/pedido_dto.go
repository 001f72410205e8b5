package dto

import "github.com/shopspring/decimal"

// LineaRequest una línea solicitada en el alta de pedido.
type LineaRequest struct {
	ProductoID         string          `json:"producto_id" validate:"required,uuid4"`
	CantidadSolicitada int             `json:"cantidad_solicitada" validate:"required,gt=0"`
	PrecioUnitario     decimal.Decimal `json:"precio_unitario"`
}

// CrearPedidoRequest body para POST /api/pedidos.
type CrearPedidoRequest struct {
	ClienteID string         `json:"cliente_id" validate:"required,uuid4"`
	BodegaID  string         `json:"bodega_id" validate:"required,uuid4"`
	ACredito  bool           `json:"a_credito"`
	Lineas    []LineaRequest `json:"lineas" validate:"required,min=1,dive"`
}

// LineaResponse línea con avance de surtido.
type LineaResponse struct {
	ID                 string `json:"id"`
	ProductoID         string `json:"producto_id"`
	CantidadSolicitada int    `json:"cantidad_solicitada"`
	CantidadSurtida    int    `json:"cantidad_surtida"`
}

// PedidoResponse pedido con sus líneas.
type PedidoResponse struct {
	ID         string          `json:"id"`
	ClienteID  string          `json:"cliente_id"`
	Estado     string          `json:"estado"`
	EstadoPago string          `json:"estado_pago"`
	Total      decimal.Decimal `json:"total"`
	Lineas     []LineaResponse `json:"lineas"`
}
