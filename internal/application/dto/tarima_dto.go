package dto

import "github.com/shopspring/decimal"

// RecibirTarimaRequest body para POST /api/tarimas.
type RecibirTarimaRequest struct {
	ProductoID     string          `json:"producto_id" validate:"required,uuid4"`
	ProveedorID    string          `json:"proveedor_id" validate:"omitempty,uuid4"`
	BodegaID       string          `json:"bodega_id" validate:"required,uuid4"`
	Ubicacion      string          `json:"ubicacion,omitempty"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	DepositoEnvase decimal.Decimal `json:"deposito_envase"`
	TsLogico       int64           `json:"ts_logico,omitempty"`
}

// PickRequest body para POST /api/tarimas/:id/pick.
type PickRequest struct {
	Cantidad      int    `json:"cantidad" validate:"required,gt=0"`
	PedidoID      string `json:"pedido_id,omitempty" validate:"omitempty,uuid4"`
	SupervisorID  string `json:"supervisor_id,omitempty"`
	SupervisorPIN string `json:"supervisor_pin,omitempty"`
	TsLogico      int64  `json:"ts_logico,omitempty"`
}

// MermaRequest body para POST /api/tarimas/:id/merma.
type MermaRequest struct {
	Cantidad      int    `json:"cantidad" validate:"required,gt=0"`
	Motivo        string `json:"motivo" validate:"required,min=3"`
	SupervisorID  string `json:"supervisor_id,omitempty"`
	SupervisorPIN string `json:"supervisor_pin,omitempty"`
	TsLogico      int64  `json:"ts_logico,omitempty"`
}

// AjusteRequest body para POST /api/tarimas/:id/ajuste. Cantidad firmada.
type AjusteRequest struct {
	Cantidad      int    `json:"cantidad" validate:"required"`
	Motivo        string `json:"motivo,omitempty"`
	SupervisorID  string `json:"supervisor_id,omitempty"`
	SupervisorPIN string `json:"supervisor_pin,omitempty"`
	TsLogico      int64  `json:"ts_logico,omitempty"`
}

// ReubicacionRequest body para POST /api/tarimas/:id/reubicar.
type ReubicacionRequest struct {
	UbicacionDestino string `json:"ubicacion_destino" validate:"required"`
	Motivo           string `json:"motivo,omitempty"`
	TsLogico         int64  `json:"ts_logico,omitempty"`
}

// CerrarTarimaRequest body para POST /api/tarimas/:id/cerrar.
type CerrarTarimaRequest struct {
	SupervisorID  string `json:"supervisor_id,omitempty"`
	SupervisorPIN string `json:"supervisor_pin,omitempty"`
}

// CambiarPrecioRequest body para POST /api/tarimas/:id/precio.
type CambiarPrecioRequest struct {
	Precio        decimal.Decimal `json:"precio" validate:"required"`
	SupervisorID  string          `json:"supervisor_id,omitempty"`
	SupervisorPIN string          `json:"supervisor_pin,omitempty"`
}

// TarimaResponse estado derivado de una tarima.
type TarimaResponse struct {
	ID         string `json:"id"`
	Estado     string `json:"estado"`
	Proyeccion int    `json:"proyeccion"`
}
