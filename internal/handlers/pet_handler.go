package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/middleware"
	"github.com/pawkeep/pawkeep-backend/internal/services"
)

type PetHandler struct {
	petService *services.PetService
}

func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

func (h *PetHandler) List(c *fiber.Ctx) error {
	page, err := h.petService.List(c.Queries(), c.QueryInt("page", 1))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": page})
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	pet, err := h.petService.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": pet})
}

func (h *PetHandler) Create(c *fiber.Ctx) error {
	var req dto.PetRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	pet, err := h.petService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "data": pet})
}

func (h *PetHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	var req dto.PetRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	pet, err := h.petService.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": pet})
}

func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.petService.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "message": "Pet deleted"})
}

// ToggleOwnership flips the authenticated user's ownership of the pet.
func (h *PetHandler) ToggleOwnership(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	petID, ok := parseIDParam(c)
	if !ok {
		return invalidID(c)
	}
	owned, err := h.petService.ToggleOwnership(userID, petID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"error": false, "data": dto.ToggleOwnershipResponse{
		PetID: petID,
		Owned: owned,
	}})
}
