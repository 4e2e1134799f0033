package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/models"
)

// Deletion rules per kind. Cascade rules fan out to every record that
// required the deleted entity to exist; protect rules refuse deletion
// while references remain. All cascades run inside a transaction so
// readers never observe a half-applied delete.
//
//	species  -> cascade (pets, transitively their schedule records)
//	user     -> cascade (activities, health events, ownership rows)
//	pet      -> cascade (activities, health events, ownership rows)
//	status   -> protect (activities, health events)
//	priority -> protect (health events)

// cascadeDeletePets removes the given pets together with their
// activities, health events and ownership rows.
func cascadeDeletePets(tx *gorm.DB, petIDs []uuid.UUID) error {
	if len(petIDs) == 0 {
		return nil
	}
	if err := tx.Where("pet_id IN ?", petIDs).Delete(&models.Activity{}).Error; err != nil {
		return err
	}
	if err := tx.Where("pet_id IN ?", petIDs).Delete(&models.HealthEvent{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM pet_owners WHERE pet_id IN ?", petIDs).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", petIDs).Delete(&models.Pet{}).Error
}

// scheduleRefCount counts activities plus health events matching the
// given column, for protect-on-delete checks and cascade reporting.
func scheduleRefCount(tx *gorm.DB, column string, id uuid.UUID) (int64, error) {
	var activities, events int64
	if err := tx.Model(&models.Activity{}).Where(column+" = ?", id).Count(&activities).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&models.HealthEvent{}).Where(column+" = ?", id).Count(&events).Error; err != nil {
		return 0, err
	}
	return activities + events, nil
}
