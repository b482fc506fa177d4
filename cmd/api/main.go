package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mfigueroa/inventario-medico/internal/application/alerts"
	"github.com/mfigueroa/inventario-medico/internal/application/auth"
	"github.com/mfigueroa/inventario-medico/internal/application/export"
	"github.com/mfigueroa/inventario-medico/internal/application/medication"
	"github.com/mfigueroa/inventario-medico/internal/application/movement"
	"github.com/mfigueroa/inventario-medico/internal/application/stock"
	"github.com/mfigueroa/inventario-medico/internal/domain/entity"
	"github.com/mfigueroa/inventario-medico/internal/infrastructure/postgres"
	httpRouter "github.com/mfigueroa/inventario-medico/internal/interfaces/http"
	"github.com/mfigueroa/inventario-medico/pkg/config"
	"github.com/mfigueroa/inventario-medico/pkg/logger"
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
		Str("drain_policy", cfg.Inventory.TransferDrainPolicy).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	principalRepo := postgres.NewStockRepository(pool, entity.LocationPrincipal)
	secundarioRepo := postgres.NewStockRepository(pool, entity.LocationSecundario)
	medicationRepo := postgres.NewMedicationRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	principalUC := stock.NewUseCase(principalRepo)
	secundarioUC := stock.NewUseCase(secundarioRepo)
	medicationUC := medication.NewUseCase(medicationRepo)
	movementUC := movement.NewUseCase(txRunner, cfg.Inventory.TransferDrainPolicy)
	history := movement.NewHistory(transferRepo, withdrawalRepo)
	alertsUC := alerts.NewUseCase(medicationRepo, nil)
	exportPpal := export.NewUseCase(principalRepo)
	exportSec := export.NewUseCase(secundarioRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Médico API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PrincipalUC:  principalUC,
		SecundarioUC: secundarioUC,
		MedicationUC: medicationUC,
		MovementUC:   movementUC,
		History:      history,
		AlertsUC:     alertsUC,
		ExportPpal:   exportPpal,
		ExportSec:    exportSec,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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
