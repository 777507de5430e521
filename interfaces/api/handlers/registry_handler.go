package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hotsprings/domain/dto"
	"hotsprings/domain/services"
	"hotsprings/pkg/logger"
)

var validate = validator.New()

type RegistryHandler struct {
	registryService services.RegistryService
}

func NewRegistryHandler(registryService services.RegistryService) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

// CreatePerson handles POST /hot_spring/skinny_dipper.
func (h *RegistryHandler) CreatePerson(c *fiber.Ctx) error {
	view, err := parsePersonView(c)
	if err != nil {
		return err
	}

	logger.API("create_skinny_dipper", "Creating skinny dipper", map[string]interface{}{
		"email": view.Email,
	})

	saved, err := h.registryService.SavePerson(c.Context(), view)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// UpdatePerson handles PUT /hot_spring/skinny_dipper/:dipperId. The path id
// always wins over whatever the body carries.
func (h *RegistryHandler) UpdatePerson(c *fiber.Ctx) error {
	id, err := parseID(c, "dipperId")
	if err != nil {
		return err
	}
	view, err := parsePersonView(c)
	if err != nil {
		return err
	}
	view.ID = &id

	logger.API("update_skinny_dipper", "Updating skinny dipper", map[string]interface{}{
		"id": id,
	})

	saved, err := h.registryService.SavePerson(c.Context(), view)
	if err != nil {
		return err
	}
	return c.JSON(saved)
}

// ListPersons handles GET /hot_spring/skinny_dipper.
func (h *RegistryHandler) ListPersons(c *fiber.Ctx) error {
	views, err := h.registryService.ListPersons(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(views)
}

// GetPerson handles GET /hot_spring/skinny_dipper/:dipperId.
func (h *RegistryHandler) GetPerson(c *fiber.Ctx) error {
	id, err := parseID(c, "dipperId")
	if err != nil {
		return err
	}
	view, err := h.registryService.GetPerson(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// DeleteAllPersons handles DELETE /hot_spring/skinny_dipper, which is never
// allowed to succeed.
func (h *RegistryHandler) DeleteAllPersons(c *fiber.Ctx) error {
	logger.API("delete_all_skinny_dippers", "Attempting to delete all skinny dippers", nil)
	return h.registryService.DeleteAllPersons(c.Context())
}

// DeletePerson handles DELETE /hot_spring/skinny_dipper/:dipperId.
func (h *RegistryHandler) DeletePerson(c *fiber.Ctx) error {
	id, err := parseID(c, "dipperId")
	if err != nil {
		return err
	}

	logger.API("delete_skinny_dipper", "Deleting skinny dipper", map[string]interface{}{
		"id": id,
	})

	if err := h.registryService.DeletePerson(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{
		Message: "deletion of skinny dipper with ID=" + c.Params("dipperId") + " was successful",
	})
}

// CreateLocation handles POST /hot_spring/skinny_dipper/:dipperId/hot_spring.
func (h *RegistryHandler) CreateLocation(c *fiber.Ctx) error {
	ownerID, err := parseID(c, "dipperId")
	if err != nil {
		return err
	}
	view, err := parseLocationView(c)
	if err != nil {
		return err
	}

	logger.API("create_hot_spring", "Creating hot spring", map[string]interface{}{
		"owner_id": ownerID,
		"name":     view.Name,
	})

	saved, err := h.registryService.SaveLocation(c.Context(), ownerID, view)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// UpdateLocation handles PUT /hot_spring/skinny_dipper/:dipperId/hot_spring/:springId.
func (h *RegistryHandler) UpdateLocation(c *fiber.Ctx) error {
	ownerID, err := parseID(c, "dipperId")
	if err != nil {
		return err
	}
	springID, err := parseID(c, "springId")
	if err != nil {
		return err
	}
	view, err := parseLocationView(c)
	if err != nil {
		return err
	}
	view.ID = &springID

	logger.API("update_hot_spring", "Updating hot spring", map[string]interface{}{
		"owner_id": ownerID,
		"id":       springID,
	})

	saved, err := h.registryService.SaveLocation(c.Context(), ownerID, view)
	if err != nil {
		return err
	}
	return c.JSON(saved)
}

// GetLocation handles GET /hot_spring/skinny_dipper/:dipperId/hot_spring/:springId.
func (h *RegistryHandler) GetLocation(c *fiber.Ctx) error {
	ownerID, err := parseID(c, "dipperId")
	if err != nil {
		return err
	}
	springID, err := parseID(c, "springId")
	if err != nil {
		return err
	}

	view, err := h.registryService.GetLocation(c.Context(), ownerID, springID)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id in path: "+c.Params(name))
	}
	return uint(id), nil
}

func parsePersonView(c *fiber.Ctx) (*dto.PersonView, error) {
	var view dto.PersonView
	if err := c.BodyParser(&view); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&view); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &view, nil
}

func parseLocationView(c *fiber.Ctx) (*dto.LocationView, error) {
	var view dto.LocationView
	if err := c.BodyParser(&view); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&view); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &view, nil
}
