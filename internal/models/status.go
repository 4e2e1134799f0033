package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is a catalog entry referenced by Activity and HealthEvent.
// Deletion is refused while any reference exists.
type Status struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:150;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Status) TableName() string {
	return "statuses"
}

func (s *Status) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
