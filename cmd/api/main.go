package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/distrisur/bodega-api/internal/application/auth"
	"github.com/distrisur/bodega-api/internal/application/ledger"
	"github.com/distrisur/bodega-api/internal/application/pagos"
	"github.com/distrisur/bodega-api/internal/application/pedidos"
	"github.com/distrisur/bodega-api/internal/application/picking"
	"github.com/distrisur/bodega-api/internal/application/reportes"
	infrapdf "github.com/distrisur/bodega-api/internal/infrastructure/pdf"
	"github.com/distrisur/bodega-api/internal/infrastructure/postgres"
	"github.com/distrisur/bodega-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/distrisur/bodega-api/internal/interfaces/http"
	"github.com/distrisur/bodega-api/pkg/config"
	"github.com/distrisur/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repos de lectura fuera de transacción (pool directo)
	userRepo := postgres.NewUserRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	bodegaRepo := postgres.NewBodegaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	tarimaRepo := postgres.NewTarimaRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	creditoRepo := postgres.NewCreditoRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	ledgerUC := ledger.NewUseCase(txRunner, productoRepo, bodegaRepo)
	pickingUC := picking.NewUseCase(txRunner)
	pedidosUC := pedidos.NewUseCase(pedidoRepo, clienteRepo, creditoRepo)
	pagosUC := pagos.NewUseCase(txRunner, nil)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	xmlExporter := xmlexport.NewEtreeExporter()
	reportesUC := reportes.NewUseCase(tarimaRepo, eventoRepo, productoRepo, bodegaRepo, pdfGenerator, xmlExporter)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		PickingUC:  pickingUC,
		PedidosUC:  pedidosUC,
		PagosUC:    pagosUC,
		ReportesUC: reportesUC,
		AuthUC:     authUC,
		TarimaRepo: tarimaRepo,
		EventoRepo: eventoRepo,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
