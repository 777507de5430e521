package routes

import (
	"github.com/gofiber/fiber/v2"

	"hotsprings/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app, h)
	SetupRegistryRoutes(app, h)
}
