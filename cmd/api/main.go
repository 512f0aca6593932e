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

	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/application/respaldo"
	"github.com/gestormx/gestor-comercial/internal/infrastructure/pdf"
	"github.com/gestormx/gestor-comercial/internal/infrastructure/persistence"
	httpRouter "github.com/gestormx/gestor-comercial/internal/interfaces/http"
	"github.com/gestormx/gestor-comercial/pkg/config"
	"github.com/gestormx/gestor-comercial/pkg/logger"
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
		Str("persistencia", cfg.Persistencia.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, cerrar, err := abrirStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de snapshots")
	}
	defer cerrar()

	estado, err := store.Cargar(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado persistido")
	}

	motor := orquestador.Nuevo(estado, store, log, orquestador.Cuentas{
		Ventas:     cfg.Cuentas.Ventas,
		Fletes:     cfg.Cuentas.Fletes,
		Utilidades: cfg.Cuentas.Utilidades,
	})
	motor.AsegurarCuentas(cfg.Cuentas.Claves()...)

	respaldoSvc := respaldo.NuevoServicio(motor, cfg.App.Version)
	notaPDF := pdf.NewNotaVentaGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware entra
	// en pánico si el archivo no existe, así que se registra solo cuando está.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "Gestor Comercial API",
		}))
	} else {
		log.Warn().Str("archivo", swaggerSpec).Msg("especificación swagger no encontrada, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Motor:    motor,
		Respaldo: respaldoSvc,
		NotaPDF:  notaPDF,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// Última escritura síncrona para no perder la operación más reciente.
	if err := store.Guardar(ctx, motor.Snapshot()); err != nil {
		log.Error().Err(err).Msg("persistencia final")
	}
}

// abrirStore construye el almacén de snapshots según el driver configurado.
func abrirStore(ctx context.Context, cfg *config.Config) (persistence.SnapshotStore, func(), error) {
	switch cfg.Persistencia.Driver {
	case config.DriverPostgres:
		pool, err := persistence.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		store, err := persistence.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		store, err := persistence.NewFileStore(cfg.Persistencia.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
