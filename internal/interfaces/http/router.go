package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/distrisur/bodega-api/internal/application/auth"
	"github.com/distrisur/bodega-api/internal/application/ledger"
	"github.com/distrisur/bodega-api/internal/application/pagos"
	"github.com/distrisur/bodega-api/internal/application/pedidos"
	"github.com/distrisur/bodega-api/internal/application/picking"
	"github.com/distrisur/bodega-api/internal/application/reportes"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *ledger.UseCase
	PickingUC  *picking.UseCase
	PedidosUC  *pedidos.UseCase
	PagosUC    *pagos.UseCase
	ReportesUC *reportes.UseCase
	AuthUC     *auth.AuthUseCase
	TarimaRepo repository.TarimaRepository
	EventoRepo repository.EventoRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tarimas: ledger de eventos (protegido)
	tarimas := protected.Group("/tarimas")
	tarimaHandler := NewTarimaHandler(deps.LedgerUC, deps.AuthUC, deps.TarimaRepo, deps.EventoRepo)
	tarimas.Post("/", tarimaHandler.Recibir)
	tarimas.Get("/", tarimaHandler.Listar)
	tarimas.Get("/:id", tarimaHandler.Proyeccion)
	tarimas.Get("/:id/eventos", tarimaHandler.Eventos)
	tarimas.Post("/:id/pick", tarimaHandler.Pick)
	tarimas.Post("/:id/merma", tarimaHandler.Merma)
	tarimas.Post("/:id/ajuste", tarimaHandler.Ajuste)
	tarimas.Post("/:id/reubicar", tarimaHandler.Reubicar)
	tarimas.Post("/:id/cerrar", tarimaHandler.Cerrar)
	tarimas.Post("/:id/precio", tarimaHandler.CambiarPrecio)

	// Sync offline (protegido)
	sync := protected.Group("/sync")
	syncHandler := NewSyncHandler(deps.LedgerUC)
	sync.Post("/eventos", syncHandler.Sincronizar)

	// Pedidos y picking (protegido)
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidosUC)
	pedidosGroup.Post("/", pedidoHandler.Crear)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)

	pickingHandler := NewPickingHandler(deps.PickingUC, deps.AuthUC)
	protected.Post("/lineas/:id/asignaciones", pickingHandler.Asignar)
	protected.Post("/asignaciones/:id/confirmar", pickingHandler.Confirmar)

	// Créditos y abonos (protegido)
	pagoHandler := NewPagoHandler(deps.PagosUC)
	protected.Post("/creditos/:id/abonos", pagoHandler.RegistrarAbono)

	// Reportes (protegido, solo supervisor/admin)
	reportesGroup := protected.Group("/reportes", RequireRole(entity.RolSupervisor, entity.RolAdmin))
	reporteHandler := NewReporteHandler(deps.ReportesUC)
	reportesGroup.Get("/existencias/:bodega_id", reporteHandler.ExistenciasPDF)
	reportesGroup.Get("/ledger/:id/xml", reporteHandler.LedgerXML)
}
