package dto

// EventoSyncRequest un evento originado offline dentro de un lote.
type EventoSyncRequest struct {
	RefLocal     string `json:"ref_local" validate:"required"`
	TarimaID     string `json:"tarima_id" validate:"required"`
	Tipo         string `json:"tipo" validate:"required"`
	Cantidad     int    `json:"cantidad"`
	Motivo       string `json:"motivo,omitempty"`
	PedidoID     string `json:"pedido_id,omitempty"`
	SupervisorID string `json:"supervisor_id,omitempty"`
	TsLogico     int64  `json:"ts_logico" validate:"required"`
}

// SyncRequest body para POST /api/sync/eventos.
type SyncRequest struct {
	Eventos []EventoSyncRequest `json:"eventos" validate:"required,min=1,dive"`
}

// ResultadoSyncDTO resultado individual de un evento del lote.
type ResultadoSyncDTO struct {
	RefLocal string `json:"ref_local"`
	Aceptado bool   `json:"aceptado"`
	Motivo   string `json:"motivo,omitempty"`
}

// SyncResponse respuesta del lote: siempre HTTP 200, con resultados por evento.
type SyncResponse struct {
	SyncBatchID string             `json:"sync_batch_id"`
	Resultados  []ResultadoSyncDTO `json:"resultados"`
}
