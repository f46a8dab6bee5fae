package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mascotas-api/internal/application/auth"
	"github.com/jhoicas/mascotas-api/internal/application/pets"
	"github.com/jhoicas/mascotas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	PetUC        *pets.PetUseCase
	Log          *logger.Logger
	ExposeErrors bool // detalle del error interno en las respuestas 500
}

// Router registra las rutas de la API. Todas son públicas.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	authHandler := NewAuthHandler(deps.AuthUC, log, deps.ExposeErrors)
	app.Post("/login", authHandler.Login)
	app.Post("/register", authHandler.Register)

	petHandler := NewPetHandler(deps.PetUC, log, deps.ExposeErrors)
	app.Post("/create", petHandler.Create)
}
