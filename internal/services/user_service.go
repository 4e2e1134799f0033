package services

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/query"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(params map[string]string, page int) (*query.Page[models.User], error) {
	return query.List[models.User](s.db, query.SpecFor(query.KindUser), params, page)
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Pets").First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.UserCreateRequest) (*models.User, error) {
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if len(req.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}
	if err := ensureUnique(s.db, &models.User{}, "username", req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:  req.Username,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UserUpdateRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := ensureUnique(s.db, &models.User{}, "username", req.Username, id); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"username":   req.Username,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Email,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete cascades to the user's activities, health events, ownership
// rows and refresh tokens.
func (s *UserService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "user", id)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.HealthEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM pet_owners WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func validateUsername(username string) error {
	if username == "" || len(username) > 150 {
		return apperr.Validation("username is required and must be at most 150 characters")
	}
	return nil
}
