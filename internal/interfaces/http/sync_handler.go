package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/application/ledger"
)

// SyncHandler maneja la sincronización de lotes de eventos offline.
type SyncHandler struct {
	uc *ledger.UseCase
}

// NewSyncHandler construye el handler de sync.
func NewSyncHandler(uc *ledger.UseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// Sincronizar godoc
// @Summary      Sincronizar lote de eventos offline
// @Description  Aplica los eventos en orden de timestamp lógico, cada uno
// @Description  validado de forma independiente. El rechazo de un evento no
// @Description  aborta el lote: la respuesta trae el resultado por ref_local.
// @Tags         sync
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncRequest  true  "eventos del lote"
// @Success      200   {object}  dto.SyncResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sync/eventos [post]
func (h *SyncHandler) Sincronizar(c *fiber.Ctx) error {
	var in dto.SyncRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	eventos := make([]ledger.EventoSync, 0, len(in.Eventos))
	for _, e := range in.Eventos {
		eventos = append(eventos, ledger.EventoSync{
			RefLocal:     e.RefLocal,
			TarimaID:     e.TarimaID,
			Tipo:         e.Tipo,
			Cantidad:     e.Cantidad,
			Motivo:       e.Motivo,
			PedidoID:     e.PedidoID,
			SupervisorID: e.SupervisorID,
			TsLogico:     e.TsLogico,
		})
	}

	actor := ledger.Actor{UsuarioID: GetUserID(c), Rol: GetRole(c)}
	batchID, resultados, err := h.uc.SincronizarEventos(c.Context(), actor, eventos)
	if err != nil {
		return responderError(c, err)
	}

	out := dto.SyncResponse{SyncBatchID: batchID, Resultados: make([]dto.ResultadoSyncDTO, 0, len(resultados))}
	for _, r := range resultados {
		out.Resultados = append(out.Resultados, dto.ResultadoSyncDTO{
			RefLocal: r.RefLocal,
			Aceptado: r.Aceptado,
			Motivo:   r.Motivo,
		})
	}
	return c.JSON(out)
}
