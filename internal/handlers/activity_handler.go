package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	page, err := h.activityService.List(c.Queries(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": page})
}

func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	activity, err := h.activityService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": activity})
}

func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	activity, err := h.activityService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "data": activity})
}

func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	var req dto.ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	activity, err := h.activityService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": activity})
}

func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.activityService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "message": "Activity deleted"})
}
