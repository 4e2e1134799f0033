package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Species is a catalog entry referenced by Pet. Deleting a species
// cascades to its pets.
type Species struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Species) TableName() string {
	return "species"
}

func (s *Species) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
