package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HealthEvent is a vet visit or similar, an Activity with a priority.
type HealthEvent struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string         `gorm:"size:200;not null;uniqueIndex" json:"title"`
	Description   string         `gorm:"size:500" json:"description"`
	ScheduledDate datatypes.Date `gorm:"index" json:"scheduled_date"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User          User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PetID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"pet_id"`
	Pet           Pet            `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	StatusID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"status_id"`
	Status        Status         `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	PriorityID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"priority_id"`
	Priority      Priority       `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (e *HealthEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
