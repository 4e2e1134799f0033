package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/models"
)

// DashboardHandler serves the home-page counters: totals plus the
// schedule records still in "Pending" status.
type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var resp dto.DashboardResponse

	if err := h.db.Model(&models.User{}).Count(&resp.NumUsers).Error; err != nil {
		return respondError(c, err)
	}
	if err := h.db.Model(&models.Pet{}).Count(&resp.NumPets).Error; err != nil {
		return respondError(c, err)
	}

	pendingStatus := func() *gorm.DB {
		return h.db.Model(&models.Status{}).Select("id").Where("name = ?", "Pending")
	}
	if err := h.db.Model(&models.Activity{}).
		Where("status_id IN (?)", pendingStatus()).
		Count(&resp.NumPendingActivities).Error; err != nil {
		return respondError(c, err)
	}
	if err := h.db.Model(&models.HealthEvent{}).
		Where("status_id IN (?)", pendingStatus()).
		Count(&resp.NumPendingHealthEvents).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"error": false, "data": resp})
}
