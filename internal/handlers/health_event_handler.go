package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/services"
)

type HealthEventHandler struct {
	healthEventService *services.HealthEventService
}

func NewHealthEventHandler(healthEventService *services.HealthEventService) *HealthEventHandler {
	return &HealthEventHandler{healthEventService: healthEventService}
}

func (h *HealthEventHandler) List(c *fiber.Ctx) error {
	page, err := h.healthEventService.List(c.Queries(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": page})
}

func (h *HealthEventHandler) Get(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	event, err := h.healthEventService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": event})
}

func (h *HealthEventHandler) Create(c *fiber.Ctx) error {
	var req dto.HealthEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	event, err := h.healthEventService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "data": event})
}

func (h *HealthEventHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	var req dto.HealthEventRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	event, err := h.healthEventService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": event})
}

func (h *HealthEventHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.healthEventService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "message": "Health event deleted"})
}
