package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/query"
)

type HealthEventService struct {
	db *gorm.DB
}

func NewHealthEventService(db *gorm.DB) *HealthEventService {
	return &HealthEventService{db: db}
}

func (s *HealthEventService) List(params map[string]string, page int) (*query.Page[models.HealthEvent], error) {
	return query.List[models.HealthEvent](s.db, query.SpecFor(query.KindHealthEvent), params, page)
}

func (s *HealthEventService) Get(id uuid.UUID) (*models.HealthEvent, error) {
	var event models.HealthEvent
	err := s.db.Preload("User").Preload("Status").Preload("Pet").Preload("Priority").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, notFoundOr(err, "healthevent", id)
	}
	return &event, nil
}

func (s *HealthEventService) Create(req *dto.HealthEventRequest) (*models.HealthEvent, error) {
	event, err := s.validate(req, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(event).Error; err != nil {
		return nil, err
	}
	return s.Get(event.ID)
}

func (s *HealthEventService) Update(id uuid.UUID, req *dto.HealthEventRequest) (*models.HealthEvent, error) {
	var existing models.HealthEvent
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "healthevent", id)
	}

	event, err := s.validate(req, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"title":          event.Title,
		"description":    event.Description,
		"scheduled_date": event.ScheduledDate,
		"user_id":        event.UserID,
		"pet_id":         event.PetID,
		"status_id":      event.StatusID,
		"priority_id":    event.PriorityID,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *HealthEventService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.HealthEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("healthevent", id)
	}
	return nil
}

func (s *HealthEventService) validate(req *dto.HealthEventRequest, excludeID uuid.UUID) (*models.HealthEvent, error) {
	if req.Title == "" || len(req.Title) > 200 {
		return nil, apperr.Validation("title is required and must be at most 200 characters")
	}
	if len(req.Description) > 500 {
		return nil, apperr.Validation("description must be at most 500 characters")
	}
	if err := ensureUnique(s.db, &models.HealthEvent{}, "title", req.Title, excludeID); err != nil {
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
	if err := requireRef(s.db, &models.Priority{}, "priority", req.PriorityID); err != nil {
		return nil, err
	}

	return &models.HealthEvent{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: scheduledDate,
		UserID:        req.UserID,
		PetID:         req.PetID,
		StatusID:      req.StatusID,
		PriorityID:    req.PriorityID,
	}, nil
}
