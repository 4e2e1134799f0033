package services_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/services"
	"github.com/pawkeep/pawkeep-backend/internal/testutil"
)

func healthEventRequest(refs scheduleRefs) *dto.HealthEventRequest {
	return &dto.HealthEventRequest{
		Title:         "Annual checkup",
		Description:   "Vaccinations due",
		ScheduledDate: "2026-04-01",
		UserID:        refs.userID,
		PetID:         refs.petID,
		StatusID:      refs.statusID,
		PriorityID:    refs.priorityID,
	}
}

func TestHealthEventCreateAndGet(t *testing.T) {
	db := testutil.DB(t)
	svc := services.NewHealthEventService(db)
	refs := seedScheduleRefs(t, db)

	event, err := svc.Create(healthEventRequest(refs))
	if err != nil {
		t.Fatalf("create health event: %v", err)
	}
	if event.Priority.Name != "High" || event.Status.Name != "Pending" {
		t.Fatalf("expected preloaded relations, got %+v", event)
	}
}

func TestHealthEventRequiresPriority(t *testing.T) {
	db := testutil.DB(t)
	svc := services.NewHealthEventService(db)
	refs := seedScheduleRefs(t, db)

	req := healthEventRequest(refs)
	req.PriorityID = uuid.Nil
	if _, err := svc.Create(req); !apperr.IsValidation(err) {
		t.Fatalf("missing priority must be rejected, got %v", err)
	}

	req = healthEventRequest(refs)
	req.PriorityID = uuid.New()
	if _, err := svc.Create(req); !apperr.IsValidation(err) {
		t.Fatalf("unknown priority must be rejected, got %v", err)
	}
}

func TestHealthEventUpdateAndDelete(t *testing.T) {
	db := testutil.DB(t)
	svc := services.NewHealthEventService(db)
	refs := seedScheduleRefs(t, db)

	event, err := svc.Create(healthEventRequest(refs))
	if err != nil {
		t.Fatalf("create health event: %v", err)
	}

	req := healthEventRequest(refs)
	req.Title = "Dental cleaning"
	updated, err := svc.Update(event.ID, req)
	if err != nil {
		t.Fatalf("update health event: %v", err)
	}
	if updated.Title != "Dental cleaning" {
		t.Fatalf("expected title updated, got %q", updated.Title)
	}

	if err := svc.Delete(event.ID); err != nil {
		t.Fatalf("delete health event: %v", err)
	}
	if err := svc.Delete(event.ID); !apperr.IsNotFound(err) {
		t.Fatalf("deleting twice should be not-found, got %v", err)
	}
}
