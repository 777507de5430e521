package routes

import (
	"github.com/gofiber/fiber/v2"

	"hotsprings/interfaces/api/handlers"
)

func SetupRegistryRoutes(app *fiber.App, h *handlers.Handlers) {
	base := app.Group("/hot_spring")

	// Skinny dippers
	dippers := base.Group("/skinny_dipper")
	dippers.Post("/", h.Registry.CreatePerson)
	dippers.Get("/", h.Registry.ListPersons)
	dippers.Delete("/", h.Registry.DeleteAllPersons)
	dippers.Put("/:dipperId", h.Registry.UpdatePerson)
	dippers.Get("/:dipperId", h.Registry.GetPerson)
	dippers.Delete("/:dipperId", h.Registry.DeletePerson)

	// Hot springs, always scoped to their owner
	springs := dippers.Group("/:dipperId/hot_spring")
	springs.Post("/", h.Registry.CreateLocation)
	springs.Put("/:springId", h.Registry.UpdateLocation)
	springs.Get("/:springId", h.Registry.GetLocation)
}
