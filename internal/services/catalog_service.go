package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/query"
)

// Catalog services cover the seeded lookup kinds. They share the CRUD
// shape but differ in deletion policy: species cascades to its pets,
// status and priority are protected while referenced.

type SpeciesService struct {
	db *gorm.DB
}

func NewSpeciesService(db *gorm.DB) *SpeciesService {
	return &SpeciesService{db: db}
}

func (s *SpeciesService) List(params map[string]string, page int) (*query.Page[models.Species], error) {
	return query.List[models.Species](s.db, query.SpecFor(query.KindSpecies), params, page)
}

func (s *SpeciesService) Get(id uuid.UUID) (*models.Species, error) {
	var species models.Species
	if err := s.db.First(&species, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "species", id)
	}
	return &species, nil
}

func (s *SpeciesService) Create(name string) (*models.Species, error) {
	if name == "" || len(name) > 200 {
		return nil, apperr.Validation("name is required and must be at most 200 characters")
	}
	species := models.Species{Name: name}
	if err := s.db.Create(&species).Error; err != nil {
		return nil, err
	}
	return &species, nil
}

func (s *SpeciesService) Update(id uuid.UUID, name string) (*models.Species, error) {
	species, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if name == "" || len(name) > 200 {
		return nil, apperr.Validation("name is required and must be at most 200 characters")
	}
	if err := s.db.Model(species).Update("name", name).Error; err != nil {
		return nil, err
	}
	return species, nil
}

// Delete cascades: every pet of the species goes, and transitively the
// pets' activities, health events and ownership rows.
func (s *SpeciesService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var species models.Species
		if err := tx.First(&species, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "species", id)
		}

		var petIDs []uuid.UUID
		if err := tx.Model(&models.Pet{}).Where("species_id = ?", id).Pluck("id", &petIDs).Error; err != nil {
			return err
		}
		if err := cascadeDeletePets(tx, petIDs); err != nil {
			return err
		}
		return tx.Delete(&species).Error
	})
}

type StatusService struct {
	db *gorm.DB
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{db: db}
}

func (s *StatusService) List(params map[string]string, page int) (*query.Page[models.Status], error) {
	return query.List[models.Status](s.db, query.SpecFor(query.KindStatus), params, page)
}

func (s *StatusService) Get(id uuid.UUID) (*models.Status, error) {
	var status models.Status
	if err := s.db.First(&status, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "status", id)
	}
	return &status, nil
}

func (s *StatusService) Create(name string) (*models.Status, error) {
	if err := validateCatalogName(s.db, &models.Status{}, name, uuid.Nil); err != nil {
		return nil, err
	}
	status := models.Status{Name: name}
	if err := s.db.Create(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *StatusService) Update(id uuid.UUID, name string) (*models.Status, error) {
	status, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validateCatalogName(s.db, &models.Status{}, name, id); err != nil {
		return nil, err
	}
	if err := s.db.Model(status).Update("name", name).Error; err != nil {
		return nil, err
	}
	return status, nil
}

// Delete refuses while any activity or health event still carries the
// status; callers must reassign or remove dependents first.
func (s *StatusService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var status models.Status
		if err := tx.First(&status, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "status", id)
		}
		dependents, err := scheduleRefCount(tx, "status_id", id)
		if err != nil {
			return err
		}
		if dependents > 0 {
			return apperr.Conflict("status", id, dependents)
		}
		return tx.Delete(&status).Error
	})
}

type PriorityService struct {
	db *gorm.DB
}

func NewPriorityService(db *gorm.DB) *PriorityService {
	return &PriorityService{db: db}
}

func (s *PriorityService) List(params map[string]string, page int) (*query.Page[models.Priority], error) {
	return query.List[models.Priority](s.db, query.SpecFor(query.KindPriority), params, page)
}

func (s *PriorityService) Get(id uuid.UUID) (*models.Priority, error) {
	var priority models.Priority
	if err := s.db.First(&priority, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "priority", id)
	}
	return &priority, nil
}

func (s *PriorityService) Create(name string) (*models.Priority, error) {
	if err := validateCatalogName(s.db, &models.Priority{}, name, uuid.Nil); err != nil {
		return nil, err
	}
	priority := models.Priority{Name: name}
	if err := s.db.Create(&priority).Error; err != nil {
		return nil, err
	}
	return &priority, nil
}

func (s *PriorityService) Update(id uuid.UUID, name string) (*models.Priority, error) {
	priority, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validateCatalogName(s.db, &models.Priority{}, name, id); err != nil {
		return nil, err
	}
	if err := s.db.Model(priority).Update("name", name).Error; err != nil {
		return nil, err
	}
	return priority, nil
}

// Delete refuses while any health event still carries the priority.
func (s *PriorityService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var priority models.Priority
		if err := tx.First(&priority, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "priority", id)
		}
		var dependents int64
		if err := tx.Model(&models.HealthEvent{}).Where("priority_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return apperr.Conflict("priority", id, dependents)
		}
		return tx.Delete(&priority).Error
	})
}

func validateCatalogName(db *gorm.DB, model any, name string, excludeID uuid.UUID) error {
	if name == "" || len(name) > 150 {
		return apperr.Validation("name is required and must be at most 150 characters")
	}
	return ensureUnique(db, model, "name", name, excludeID)
}
