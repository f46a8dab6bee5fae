// @title        Mascotas API
// @version      1.0
// @description  Registro e inicio de sesión de tutores y alta de mascotas.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/mascotas-api/docs"
	"github.com/jhoicas/mascotas-api/internal/application/auth"
	"github.com/jhoicas/mascotas-api/internal/application/pets"
	"github.com/jhoicas/mascotas-api/internal/application/ports"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/memory"
	"github.com/jhoicas/mascotas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mascotas-api/internal/interfaces/http"
	"github.com/jhoicas/mascotas-api/pkg/config"
	"github.com/jhoicas/mascotas-api/pkg/logger"
	"github.com/jhoicas/mascotas-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	var store ports.StoreRunner
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		store = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		log.Info().
			Str("host", cfg.DB.Host).
			Str("db", cfg.DB.DBName).
			Int("max_conns", cfg.DB.MaxConns).
			Int("max_waiting", cfg.DB.MaxWaiting).
			Msg("conectado a PostgreSQL")
		store = postgres.NewConnRunner(pool, postgres.RunnerOptions{
			MaxConns:       cfg.DB.MaxConns,
			MaxWaiting:     cfg.DB.MaxWaiting,
			AcquireTimeout: cfg.DB.AcquireTimeout,
			QueryTimeout:   cfg.DB.QueryTimeout,
		})
	}

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	authUC := auth.NewAuthUseCase(store, hasher)
	petUC := pets.NewPetUseCase(store)

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsEnabled {
		if _, err := os.Stat(cfg.HTTP.DocsFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.DocsFile,
				Path:     "docs",
				Title:    "Mascotas API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.DocsFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PetUC:        petUC,
		Log:          log,
		ExposeErrors: cfg.HTTP.ExposeErrors,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
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
