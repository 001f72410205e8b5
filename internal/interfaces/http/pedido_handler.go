package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/application/pedidos"
)

// PedidoHandler maneja alta y consulta de pedidos.
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler construye el handler de pedidos.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPedidoRequest  true  "cliente_id, bodega_id, lineas"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	lineas := make([]pedidos.LineaInput, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		lineas = append(lineas, pedidos.LineaInput{
			ProductoID:         l.ProductoID,
			CantidadSolicitada: l.CantidadSolicitada,
			PrecioUnitario:     l.PrecioUnitario,
		})
	}
	pedido, err := h.uc.CrearPedido(pedidos.CrearPedidoInput{
		ClienteID: in.ClienteID,
		BodegaID:  in.BodegaID,
		ACredito:  in.ACredito,
		Lineas:    lineas,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          pedido.ID,
		"estado":      pedido.Estado,
		"estado_pago": pedido.EstadoPago,
		"total":       pedido.Total,
	})
}

// GetByID godoc
// @Summary      Consultar pedido con avance de surtido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	pedido, lineas, err := h.uc.GetPedido(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	out := dto.PedidoResponse{
		ID:         pedido.ID,
		ClienteID:  pedido.ClienteID,
		Estado:     pedido.Estado,
		EstadoPago: pedido.EstadoPago,
		Total:      pedido.Total,
		Lineas:     make([]dto.LineaResponse, 0, len(lineas)),
	}
	for _, l := range lineas {
		out.Lineas = append(out.Lineas, dto.LineaResponse{
			ID:                 l.ID,
			ProductoID:         l.ProductoID,
			CantidadSolicitada: l.CantidadSolicitada,
			CantidadSurtida:    l.CantidadSurtida,
		})
	}
	return c.JSON(out)
}
