package database

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/models"
)

// Seed inserts the rarely-mutated catalog entries if they are missing.
// Safe to run on every startup.
func Seed(db *gorm.DB) error {
	statuses := []string{"Pending", "In Progress", "Completed", "Canceled"}
	for _, name := range statuses {
		var status models.Status
		if err := db.Where("name = ?", name).FirstOrCreate(&status, models.Status{Name: name}).Error; err != nil {
			return err
		}
	}

	priorities := []string{"Low", "Medium", "High", "Urgent"}
	for _, name := range priorities {
		var priority models.Priority
		if err := db.Where("name = ?", name).FirstOrCreate(&priority, models.Priority{Name: name}).Error; err != nil {
			return err
		}
	}

	species := []string{"Dog", "Cat", "Bird", "Rabbit"}
	for _, name := range species {
		var sp models.Species
		if err := db.Where("name = ?", name).FirstOrCreate(&sp, models.Species{Name: name}).Error; err != nil {
			return err
		}
	}

	slog.Info("catalog seed complete",
		"statuses", len(statuses), "priorities", len(priorities), "species", len(species))
	return nil
}
