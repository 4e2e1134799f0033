package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Pet belongs to exactly one species and zero or more owners.
// Weight and height are decimal(5,2): non-negative, at most 999.99.
type Pet struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null;uniqueIndex" json:"name"`
	SpeciesID uuid.UUID      `gorm:"type:uuid;not null;index" json:"species_id"`
	Species   Species        `gorm:"foreignKey:SpeciesID" json:"species,omitempty"`
	Breed     string         `gorm:"size:200" json:"breed"`
	Weight    float64        `gorm:"type:decimal(5,2)" json:"weight"`
	Height    float64        `gorm:"type:decimal(5,2)" json:"height"`
	BirthDate datatypes.Date `json:"birth_date"`
	Owners    []User         `gorm:"many2many:pet_owners" json:"owners,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
