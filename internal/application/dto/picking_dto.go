package dto

// AsignarPickRequest body para POST /api/pedidos/lineas/:id/asignaciones.
type AsignarPickRequest struct {
	TarimaID string `json:"tarima_id" validate:"required,uuid4"`
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
}

// ConfirmarPickRequest body para POST /api/asignaciones/:id/confirmar.
type ConfirmarPickRequest struct {
	CantidadConfirmada int    `json:"cantidad_confirmada" validate:"required,gt=0"`
	SupervisorID       string `json:"supervisor_id,omitempty"`
	SupervisorPIN      string `json:"supervisor_pin,omitempty"`
}

// AsignacionResponse estado derivado de una asignación.
type AsignacionResponse struct {
	AsignacionID string `json:"asignacion_id"`
	Estado       string `json:"estado"`
	TarimaEstado string `json:"tarima_estado"`
	PedidoEstado string `json:"pedido_estado,omitempty"`
	Proyeccion   int    `json:"proyeccion"`
}
