package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/query"
)

type PetService struct {
	db *gorm.DB
}

func NewPetService(db *gorm.DB) *PetService {
	return &PetService{db: db}
}

func (s *PetService) List(params map[string]string, page int) (*query.Page[models.Pet], error) {
	return query.List[models.Pet](s.db, query.SpecFor(query.KindPet), params, page)
}

func (s *PetService) Get(id uuid.UUID) (*models.Pet, error) {
	var pet models.Pet
	err := s.db.Preload("Species").Preload("Owners").First(&pet, "id = ?", id).Error
	if err != nil {
		return nil, notFoundOr(err, "pet", id)
	}
	return &pet, nil
}

func (s *PetService) Create(req *dto.PetRequest) (*models.Pet, error) {
	pet, owners, err := s.validate(req, uuid.Nil)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pet).Error; err != nil {
			return err
		}
		if len(owners) > 0 {
			return tx.Model(pet).Association("Owners").Append(&owners)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(pet.ID)
}

func (s *PetService) Update(id uuid.UUID, req *dto.PetRequest) (*models.Pet, error) {
	var existing models.Pet
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "pet", id)
	}

	pet, owners, err := s.validate(req, id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":       pet.Name,
			"species_id": pet.SpeciesID,
			"breed":      pet.Breed,
			"weight":     pet.Weight,
			"height":     pet.Height,
			"birth_date": pet.BirthDate,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		if len(owners) == 0 {
			return tx.Model(&existing).Association("Owners").Clear()
		}
		return tx.Model(&existing).Association("Owners").Replace(&owners)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete cascades to the pet's activities and health events and
// removes it from every owner's pet set.
func (s *PetService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var pet models.Pet
		if err := tx.First(&pet, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "pet", id)
		}
		return cascadeDeletePets(tx, []uuid.UUID{id})
	})
}

// ToggleOwnership flips membership of the pet in the acting user's
// owned-pets set. Two calls with the same pair restore the original
// state. Any authenticated user may toggle any pet for themselves.
func (s *PetService) ToggleOwnership(userID, petID uuid.UUID) (owned bool, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var pet models.Pet
		if err := tx.First(&pet, "id = ?", petID).Error; err != nil {
			return notFoundOr(err, "pet", petID)
		}
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return notFoundOr(err, "user", userID)
		}

		var n int64
		if err := tx.Table("pet_owners").
			Where("pet_id = ? AND user_id = ?", petID, userID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			owned = false
			return tx.Model(&pet).Association("Owners").Delete(&user)
		}
		owned = true
		return tx.Model(&pet).Association("Owners").Append(&user)
	})
	return owned, err
}

func (s *PetService) validate(req *dto.PetRequest, excludeID uuid.UUID) (*models.Pet, []models.User, error) {
	if req.Name == "" || len(req.Name) > 150 {
		return nil, nil, apperr.Validation("name is required and must be at most 150 characters")
	}
	if len(req.Breed) > 200 {
		return nil, nil, apperr.Validation("breed must be at most 200 characters")
	}
	if err := ensureUnique(s.db, &models.Pet{}, "name", req.Name, excludeID); err != nil {
		return nil, nil, err
	}
	if err := validateMeasure(req.Weight, "weight"); err != nil {
		return nil, nil, err
	}
	if err := validateMeasure(req.Height, "height"); err != nil {
		return nil, nil, err
	}
	birthDate, err := parseDate(req.BirthDate, "birth_date")
	if err != nil {
		return nil, nil, err
	}
	if err := requireRef(s.db, &models.Species{}, "species", req.SpeciesID); err != nil {
		return nil, nil, err
	}

	owners := make([]models.User, 0, len(req.OwnerIDs))
	for _, ownerID := range req.OwnerIDs {
		var user models.User
		if err := s.db.First(&user, "id = ?", ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperr.Validation("owner %s does not exist", ownerID)
			}
			return nil, nil, err
		}
		owners = append(owners, user)
	}

	return &models.Pet{
		Name:      req.Name,
		SpeciesID: req.SpeciesID,
		Breed:     req.Breed,
		Weight:    req.Weight,
		Height:    req.Height,
		BirthDate: birthDate,
	}, owners, nil
}
