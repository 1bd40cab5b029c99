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

	"github.com/casamedica/distribucion-api/internal/application/auth"
	"github.com/casamedica/distribucion-api/internal/application/pedidos"
	"github.com/casamedica/distribucion-api/internal/application/stock"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
	infrapdf "github.com/casamedica/distribucion-api/internal/infrastructure/pdf"
	"github.com/casamedica/distribucion-api/internal/infrastructure/postgres"
	httpRouter "github.com/casamedica/distribucion-api/internal/interfaces/http"
	"github.com/casamedica/distribucion-api/pkg/config"
	"github.com/casamedica/distribucion-api/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	detalleRepo := postgres.NewDetallePedidoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	medicoRepo := postgres.NewMedicoRepository(pool)
	representanteRepo := postgres.NewRepresentanteRepository(pool)
	internoRepo := postgres.NewInternoRepository(pool)
	direccionRepo := postgres.NewDireccionRepository(pool)
	laboratorioRepo := postgres.NewLaboratorioRepository(pool)
	paqueteriaRepo := postgres.NewPaqueteriaRepository(pool)
	promocionRepo := postgres.NewPromocionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := stock.NewLedger(txRunner, productoRepo, inventarioRepo)

	comprobanteGen := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	pedidosUC := pedidos.NewUseCase(
		txRunner,
		pedidoRepo, detalleRepo, productoRepo,
		clienteRepo, usuarioRepo, direccionRepo,
		comprobanteGen,
	)

	authUC := auth.NewUseCase(auth.Config{
		Secret:            cfg.JWT.Secret,
		Issuer:            cfg.JWT.Issuer,
		ExpirationMinutes: cfg.JWT.Expiration,
	}, usuarioRepo, clienteRepo, medicoRepo, representanteRepo, internoRepo)

	productoUC := usecase.NewProductoUseCase(productoRepo, laboratorioRepo)
	laboratorioUC := usecase.NewLaboratorioUseCase(laboratorioRepo)
	paqueteriaUC := usecase.NewPaqueteriaUseCase(paqueteriaRepo)
	promocionUC := usecase.NewPromocionUseCase(promocionRepo, productoRepo)
	direccionUC := usecase.NewDireccionUseCase(direccionRepo, clienteRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo, usuarioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Distribución API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductoUC:    productoUC,
		LaboratorioUC: laboratorioUC,
		PaqueteriaUC:  paqueteriaUC,
		PromocionUC:   promocionUC,
		DireccionUC:   direccionUC,
		ClienteUC:     clienteUC,
		Ledger:        ledger,
		PedidosUC:     pedidosUC,
		JWTSecret:     cfg.JWT.Secret,
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
