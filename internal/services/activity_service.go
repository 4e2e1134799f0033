package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/query"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) List(params map[string]string, page int) (*query.Page[models.Activity], error) {
	return query.List[models.Activity](s.db, query.SpecFor(query.KindActivity), params, page)
}

func (s *ActivityService) Get(id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.Preload("User").Preload("Status").Preload("Pet").
		First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, notFoundOr(err, "activity", id)
	}
	return &activity, nil
}

func (s *ActivityService) Create(req *dto.ActivityRequest) (*models.Activity, error) {
	activity, err := s.validate(req, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(activity).Error; err != nil {
		return nil, err
	}
	return s.Get(activity.ID)
}

func (s *ActivityService) Update(id uuid.UUID, req *dto.ActivityRequest) (*models.Activity, error) {
	var existing models.Activity
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "activity", id)
	}

	activity, err := s.validate(req, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"title":          activity.Title,
		"description":    activity.Description,
		"scheduled_date": activity.ScheduledDate,
		"user_id":        activity.UserID,
		"pet_id":         activity.PetID,
		"status_id":      activity.StatusID,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ActivityService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Activity{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("activity", id)
	}
	return nil
}

func (s *ActivityService) validate(req *dto.ActivityRequest, excludeID uuid.UUID) (*models.Activity, error) {
	if req.Title == "" || len(req.Title) > 200 {
		return nil, apperr.Validation("title is required and must be at most 200 characters")
	}
	if len(req.Description) > 500 {
		return nil, apperr.Validation("description must be at most 500 characters")
	}
	if err := ensureUnique(s.db, &models.Activity{}, "title", req.Title, excludeID); err != nil {
		return nil, err
	}
	scheduledDate, err := parseDate(req.ScheduledDate, "scheduled_date")
	if err != nil {
		return nil, err
	}
	if err := requireRef(s.db, &models.User{}, "user", req.UserID); err != nil {
		return nil, err
	}
	if err := requireRef(s.db, &models.Pet{}, "pet", req.PetID); err != nil {
		return nil, err
	}
	if err := requireRef(s.db, &models.Status{}, "status", req.StatusID); err != nil {
		return nil, err
	}

	return &models.Activity{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: scheduledDate,
		UserID:        req.UserID,
		PetID:         req.PetID,
		StatusID:      req.StatusID,
	}, nil
}
