package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/domain"
)

// responderError traduce los errores de dominio a respuestas HTTP. Los dos
// errores tipados llevan su contexto en el cuerpo: el umbral de escalación
// para que el cliente pida la co-firma, y el disponible proyectado para que
// muestre cuánto sí se puede surtir.
func responderError(c *fiber.Ctx, err error) error {
	var escalacion *domain.EscalacionRequeridaError
	if errors.As(err, &escalacion) {
		umbral := escalacion.Umbral
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "ESCALATION_REQUIRED",
			Message: "la operación requiere co-firma de supervisor",
			Umbral:  &umbral,
		})
	}
	var insuficiente *domain.InventarioInsuficienteError
	if errors.As(err, &insuficiente) {
		disponible := insuficiente.Disponible
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:       "INSUFFICIENT_INVENTORY",
			Message:    "inventario proyectado insuficiente",
			Disponible: &disponible,
		})
	}

	switch {
	case errors.Is(err, domain.ErrTarimaNoEncontrada),
		errors.Is(err, domain.ErrAsignacionNoEncontrada),
		errors.Is(err, domain.ErrLineaNoEncontrada),
		errors.Is(err, domain.ErrPedidoNoEncontrado),
		errors.Is(err, domain.ErrCreditoNoEncontrado),
		errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrYaProcesada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PROCESSED", Message: "la asignación ya fue confirmada"})
	case errors.Is(err, domain.ErrModificacionConcurrente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENT_MODIFICATION", Message: "la tarima fue modificada por otra operación, reintente"})
	case errors.Is(err, domain.ErrMotivoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la merma requiere un motivo"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "co-firma rechazada"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
