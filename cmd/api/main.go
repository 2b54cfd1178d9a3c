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
	"github.com/mouyassirm/elles224/internal/application/finance"
	"github.com/mouyassirm/elles224/internal/application/ledger"
	"github.com/mouyassirm/elles224/internal/application/report"
	"github.com/mouyassirm/elles224/internal/application/stock"
	"github.com/mouyassirm/elles224/internal/infrastructure/postgres"
	httpRouter "github.com/mouyassirm/elles224/internal/interfaces/http"
	"github.com/mouyassirm/elles224/pkg/config"
	"github.com/mouyassirm/elles224/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.New(itemRepo)
	ledgerUC := ledger.New(txRunner, itemRepo, movementRepo)
	financeUC := finance.New(itemRepo, movementRepo)
	reportUC := report.New(itemRepo, movementRepo, financeUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if !mountSwagger(app, "./docs/swagger.json") {
		log.Warn().Msg("docs/swagger.json no encontrado, UI de swagger deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:   stockUC,
		LedgerUC:  ledgerUC,
		FinanceUC: financeUC,
		ReportUC:  reportUC,
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

// mountSwagger registra la UI de swagger solo si la especificación existe;
// el middleware lee el archivo al construirse y entra en pánico si falta,
// y la API debe arrancar igual sin documentación.
func mountSwagger(app *fiber.App, specPath string) bool {
	if _, err := os.Stat(specPath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "ELLES 224 Stock API",
	}))
	return true
}
