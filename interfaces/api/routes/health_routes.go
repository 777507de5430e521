package routes

import (
	"github.com/gofiber/fiber/v2"

	"hotsprings/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.Health.Check)
}
