package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/auth"
	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/application/picking"
)

// PickingHandler maneja asignaciones y confirmaciones de pick.
type PickingHandler struct {
	uc     *picking.UseCase
	authUC *auth.AuthUseCase
}

// NewPickingHandler construye el handler de picking.
func NewPickingHandler(uc *picking.UseCase, authUC *auth.AuthUseCase) *PickingHandler {
	return &PickingHandler{uc: uc, authUC: authUC}
}

// Asignar godoc
// @Summary      Asignar una tarima candidata a una línea de pedido
// @Description  Crea la asignación ABIERTA y reserva la tarima. No descuenta
// @Description  inventario: eso ocurre al confirmar.
// @Tags         picking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la línea de pedido"
// @Param        body  body  dto.AsignarPickRequest  true  "tarima_id, cantidad"
// @Success      201   {object}  dto.AsignacionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lineas/{id}/asignaciones [post]
func (h *PickingHandler) Asignar(c *fiber.Ctx) error {
	var in dto.AsignarPickRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	actor := picking.Actor{UsuarioID: GetUserID(c), Rol: GetRole(c)}
	res, err := h.uc.AsignarPick(c.Context(), actor, c.Params("id"), in.TarimaID, in.Cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AsignacionResponse{
		AsignacionID: res.AsignacionID,
		Estado:       res.Estado,
		TarimaEstado: res.TarimaEstado,
		Proyeccion:   res.Proyeccion,
	})
}

// Confirmar godoc
// @Summary      Confirmar una asignación con la cantidad surtida
// @Description  Transición única ABIERTA → CONFIRMADA. Confirmar más de lo
// @Description  asignado requiere co-firma de supervisor para operarios.
// @Tags         picking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la asignación"
// @Param        body  body  dto.ConfirmarPickRequest  true  "cantidad_confirmada"
// @Success      200   {object}  dto.AsignacionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/asignaciones/{id}/confirmar [post]
func (h *PickingHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.ConfirmarPickRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if in.SupervisorID != "" {
		if err := h.authUC.VerificarSupervisor(in.SupervisorID, in.SupervisorPIN); err != nil {
			return responderError(c, err)
		}
	}
	actor := picking.Actor{UsuarioID: GetUserID(c), Rol: GetRole(c)}
	res, err := h.uc.ConfirmarPick(c.Context(), actor, c.Params("id"), in.CantidadConfirmada, in.SupervisorID)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.AsignacionResponse{
		AsignacionID: res.AsignacionID,
		Estado:       res.Estado,
		TarimaEstado: res.TarimaEstado,
		PedidoEstado: res.PedidoEstado,
		Proyeccion:   res.Proyeccion,
	})
}
