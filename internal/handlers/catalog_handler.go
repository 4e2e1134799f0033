package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/services"
)

// Catalog handlers expose the single-field lookup kinds. Species,
// Status and Priority share the request shape, so each handler is a
// thin wrapper around its service.

type SpeciesHandler struct {
	speciesService *services.SpeciesService
}

func NewSpeciesHandler(speciesService *services.SpeciesService) *SpeciesHandler {
	return &SpeciesHandler{speciesService: speciesService}
}

func (h *SpeciesHandler) List(c *fiber.Ctx) error {
	page, err := h.speciesService.List(c.Queries(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": page})
}

func (h *SpeciesHandler) Get(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	species, err := h.speciesService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": species})
}

func (h *SpeciesHandler) Create(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	species, err := h.speciesService.Create(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "data": species})
}

func (h *SpeciesHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	species, err := h.speciesService.Update(id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": species})
}

func (h *SpeciesHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.speciesService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "message": "Species deleted"})
}

type StatusHandler struct {
	statusService *services.StatusService
}

func NewStatusHandler(statusService *services.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

func (h *StatusHandler) List(c *fiber.Ctx) error {
	page, err := h.statusService.List(c.Queries(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": page})
}

func (h *StatusHandler) Get(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	status, err := h.statusService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": status})
}

func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	status, err := h.statusService.Create(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "data": status})
}

func (h *StatusHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	status, err := h.statusService.Update(id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": status})
}

func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.statusService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "message": "Status deleted"})
}

type PriorityHandler struct {
	priorityService *services.PriorityService
}

func NewPriorityHandler(priorityService *services.PriorityService) *PriorityHandler {
	return &PriorityHandler{priorityService: priorityService}
}

func (h *PriorityHandler) List(c *fiber.Ctx) error {
	page, err := h.priorityService.List(c.Queries(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": page})
}

func (h *PriorityHandler) Get(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	priority, err := h.priorityService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": priority})
}

func (h *PriorityHandler) Create(c *fiber.Ctx) error {
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	priority, err := h.priorityService.Create(req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "data": priority})
}

func (h *PriorityHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	var req dto.NameRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	priority, err := h.priorityService.Update(id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": priority})
}

func (h *PriorityHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.priorityService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "message": "Priority deleted"})
}
