package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/auth"
	"github.com/distrisur/bodega-api/internal/application/dto"
	"github.com/distrisur/bodega-api/internal/application/ledger"
	"github.com/distrisur/bodega-api/internal/domain/inventory"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// TarimaHandler maneja las operaciones del ledger sobre tarimas.
type TarimaHandler struct {
	uc         *ledger.UseCase
	authUC     *auth.AuthUseCase
	tarimaRepo repository.TarimaRepository
	eventoRepo repository.EventoRepository
}

// NewTarimaHandler construye el handler de tarimas.
func NewTarimaHandler(uc *ledger.UseCase, authUC *auth.AuthUseCase, tarimaRepo repository.TarimaRepository, eventoRepo repository.EventoRepository) *TarimaHandler {
	return &TarimaHandler{uc: uc, authUC: authUC, tarimaRepo: tarimaRepo, eventoRepo: eventoRepo}
}

func (h *TarimaHandler) actor(c *fiber.Ctx) ledger.Actor {
	return ledger.Actor{UsuarioID: GetUserID(c), Rol: GetRole(c)}
}

// cofirma verifica el PIN del supervisor si la petición trae co-firma.
// La identidad solo llega al caso de uso ya verificada.
func (h *TarimaHandler) cofirma(supervisorID, pin string) error {
	if supervisorID == "" {
		return nil
	}
	return h.authUC.VerificarSupervisor(supervisorID, pin)
}

// Recibir godoc
// @Summary      Recibir tarima (alta + stock inicial)
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecibirTarimaRequest  true  "producto_id, bodega_id, cantidad"
// @Success      201   {object}  dto.TarimaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tarimas [post]
func (h *TarimaHandler) Recibir(c *fiber.Ctx) error {
	var in dto.RecibirTarimaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.RecibirTarima(c.Context(), h.actor(c), ledger.RecibirTarimaInput{
		ProductoID:     in.ProductoID,
		ProveedorID:    in.ProveedorID,
		BodegaID:       in.BodegaID,
		Ubicacion:      in.Ubicacion,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		DepositoEnvase: in.DepositoEnvase,
		TsLogico:       in.TsLogico,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TarimaResponse{ID: res.TarimaID, Estado: res.Estado, Proyeccion: res.Proyeccion})
}

// Pick godoc
// @Summary      Registrar pick directo sobre una tarima
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarima"
// @Param        body  body  dto.PickRequest  true  "cantidad"
// @Success      200   {object}  dto.TarimaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tarimas/{id}/pick [post]
func (h *TarimaHandler) Pick(c *fiber.Ctx) error {
	var in dto.PickRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.cofirma(in.SupervisorID, in.SupervisorPIN); err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.RegistrarPick(c.Context(), h.actor(c), ledger.PickInput{
		TarimaID:     c.Params("id"),
		Cantidad:     in.Cantidad,
		PedidoID:     in.PedidoID,
		SupervisorID: in.SupervisorID,
		TsLogico:     in.TsLogico,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TarimaResponse{ID: res.TarimaID, Estado: res.Estado, Proyeccion: res.Proyeccion})
}

// Merma godoc
// @Summary      Registrar merma (daño, caducidad, rotura)
// @Description  Requiere motivo. Un operario que merma más del 20% del
// @Description  inventario proyectado necesita co-firma de supervisor.
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarima"
// @Param        body  body  dto.MermaRequest  true  "cantidad, motivo"
// @Success      200   {object}  dto.TarimaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tarimas/{id}/merma [post]
func (h *TarimaHandler) Merma(c *fiber.Ctx) error {
	var in dto.MermaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.cofirma(in.SupervisorID, in.SupervisorPIN); err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.RegistrarMerma(c.Context(), h.actor(c), ledger.MermaInput{
		TarimaID:     c.Params("id"),
		Cantidad:     in.Cantidad,
		Motivo:       in.Motivo,
		SupervisorID: in.SupervisorID,
		TsLogico:     in.TsLogico,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TarimaResponse{ID: res.TarimaID, Estado: res.Estado, Proyeccion: res.Proyeccion})
}

// Ajuste godoc
// @Summary      Registrar ajuste firmado tras conteo físico
// @Description  Cantidad positiva o negativa. Todo ajuste de un operario
// @Description  requiere co-firma de supervisor.
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarima"
// @Param        body  body  dto.AjusteRequest  true  "cantidad firmada, motivo"
// @Success      200   {object}  dto.TarimaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tarimas/{id}/ajuste [post]
func (h *TarimaHandler) Ajuste(c *fiber.Ctx) error {
	var in dto.AjusteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.cofirma(in.SupervisorID, in.SupervisorPIN); err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.RegistrarAjuste(c.Context(), h.actor(c), ledger.AjusteInput{
		TarimaID:     c.Params("id"),
		Cantidad:     in.Cantidad,
		Motivo:       in.Motivo,
		SupervisorID: in.SupervisorID,
		TsLogico:     in.TsLogico,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TarimaResponse{ID: res.TarimaID, Estado: res.Estado, Proyeccion: res.Proyeccion})
}

// Reubicar godoc
// @Summary      Mover una tarima de ubicación
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarima"
// @Param        body  body  dto.ReubicacionRequest  true  "ubicacion_destino"
// @Success      200   {object}  dto.TarimaResponse
// @Router       /api/tarimas/{id}/reubicar [post]
func (h *TarimaHandler) Reubicar(c *fiber.Ctx) error {
	var in dto.ReubicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validar(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := h.uc.ReubicarTarima(c.Context(), h.actor(c), ledger.ReubicacionInput{
		TarimaID:         c.Params("id"),
		UbicacionDestino: in.UbicacionDestino,
		Motivo:           in.Motivo,
		TsLogico:         in.TsLogico,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TarimaResponse{ID: res.TarimaID, Estado: res.Estado, Proyeccion: res.Proyeccion})
}

// Cerrar godoc
// @Summary      Cerrar una tarima (AGOTADA)
// @Description  Cambio de estado: los operarios requieren co-firma.
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarima"
// @Param        body  body  dto.CerrarTarimaRequest  false  "co-firma opcional"
// @Success      200   {object}  dto.TarimaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tarimas/{id}/cerrar [post]
func (h *TarimaHandler) Cerrar(c *fiber.Ctx) error {
	var in dto.CerrarTarimaRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.cofirma(in.SupervisorID, in.SupervisorPIN); err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.CerrarTarima(c.Context(), h.actor(c), c.Params("id"), in.SupervisorID, 0)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.TarimaResponse{ID: res.TarimaID, Estado: res.Estado, Proyeccion: res.Proyeccion})
}

// CambiarPrecio godoc
// @Summary      Cambiar el precio unitario de una tarima
// @Description  Siempre escala para operarios.
// @Tags         tarimas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarima"
// @Param        body  body  dto.CambiarPrecioRequest  true  "precio"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tarimas/{id}/precio [post]
func (h *TarimaHandler) CambiarPrecio(c *fiber.Ctx) error {
	var in dto.CambiarPrecioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.cofirma(in.SupervisorID, in.SupervisorPIN); err != nil {
		return responderError(c, err)
	}
	if err := h.uc.CambiarPrecio(c.Context(), h.actor(c), c.Params("id"), in.Precio, in.SupervisorID); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "precio actualizado"})
}

// Listar godoc
// @Summary      Listar tarimas de una bodega con su proyección
// @Tags         tarimas
// @Security     Bearer
// @Produce      json
// @Param        bodega_id  query  string  true   "ID de la bodega"
// @Param        limit      query  int     false  "máximo de filas (default 50)"
// @Param        offset     query  int     false  "desplazamiento"
// @Success      200  {array}  dto.TarimaResponse
// @Router       /api/tarimas [get]
func (h *TarimaHandler) Listar(c *fiber.Ctx) error {
	bodegaID := c.Query("bodega_id")
	if bodegaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega_id es requerido"})
	}
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	tarimas, err := h.tarimaRepo.ListByBodega(bodegaID, limit, offset)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]fiber.Map, 0, len(tarimas))
	for _, t := range tarimas {
		eventos, err := h.eventoRepo.ListByTarima(t.ID)
		if err != nil {
			return responderError(c, err)
		}
		out = append(out, fiber.Map{
			"id":          t.ID,
			"producto_id": t.ProductoID,
			"ubicacion":   t.Ubicacion,
			"estado":      t.Estado,
			"proyeccion":  inventory.Proyectar(eventos),
		})
	}
	return c.JSON(fiber.Map{"bodega_id": bodegaID, "tarimas": out})
}

// Proyeccion godoc
// @Summary      Proyección actual de una tarima
// @Description  La cantidad se deriva plegando el ledger, nunca se lee almacenada.
// @Tags         tarimas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tarima"
// @Success      200  {object}  dto.TarimaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tarimas/{id} [get]
func (h *TarimaHandler) Proyeccion(c *fiber.Ctx) error {
	tarima, proy, err := h.uc.Proyeccion(c.Context(), h.tarimaRepo, h.eventoRepo, c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{
		"id":          tarima.ID,
		"producto_id": tarima.ProductoID,
		"bodega_id":   tarima.BodegaID,
		"ubicacion":   tarima.Ubicacion,
		"estado":      tarima.Estado,
		"proyeccion":  proy,
	})
}

// Eventos godoc
// @Summary      Historia de eventos de una tarima
// @Tags         tarimas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tarima"
// @Success      200  {array}  map[string]interface{}
// @Router       /api/tarimas/{id}/eventos [get]
func (h *TarimaHandler) Eventos(c *fiber.Ctx) error {
	tarimaID := c.Params("id")
	tarima, err := h.tarimaRepo.GetByID(tarimaID)
	if err != nil {
		return responderError(c, err)
	}
	if tarima == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarima no encontrada"})
	}
	eventos, err := h.eventoRepo.ListByTarima(tarimaID)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]fiber.Map, 0, len(eventos))
	for _, e := range eventos {
		out = append(out, fiber.Map{
			"id":         e.ID,
			"tipo":       e.Tipo,
			"cantidad":   e.Cantidad,
			"usuario_id": e.UsuarioID,
			"rol":        e.Rol,
			"ts_logico":  e.TsLogico,
			"created_at": e.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"tarima_id": tarimaID, "eventos": out})
}
