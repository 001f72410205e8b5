package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/application/pagos"
)

// PagoHandler maneja abonos a créditos.
type PagoHandler struct {
	uc *pagos.UseCase
}

// NewPagoHandler construye el handler de pagos.
func NewPagoHandler(uc *pagos.UseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// RegistrarAbono godoc
// @Summary      Registrar un abono a un crédito
// @Description  Descuenta el saldo, salda el crédito al llegar a cero y
// @Description  recalcula el estado de pago del pedido.
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del crédito"
// @Param        body  body  dto.AbonoRequest  true  "monto, metodo"
// @Success      201   {object}  dto.AbonoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/creditos/{id}/abonos [post]
func (h *PagoHandler) RegistrarAbono(c *fiber.Ctx) error {
	var in dto.AbonoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	actor := pagos.Actor{UsuarioID: GetUserID(c), Rol: GetRole(c)}
	res, err := h.uc.RegistrarAbono(c.Context(), actor, c.Params("id"), in.Monto, in.Metodo)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AbonoResponse{
		AbonoID:       res.AbonoID,
		Saldo:         res.Saldo,
		CreditoEstado: res.CreditoEstado,
		EstadoPago:    res.EstadoPago,
	})
}
