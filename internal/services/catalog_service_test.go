package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
	"github.com/pawkeep/pawkeep-backend/internal/models"
	"github.com/pawkeep/pawkeep-backend/internal/services"
	"github.com/pawkeep/pawkeep-backend/internal/testutil"
)

func TestStatusDeleteProtected(t *testing.T) {
	db := testutil.DB(t)
	statusSvc := services.NewStatusService(db)
	activitySvc := services.NewActivityService(db)

	user := testutil.SeedUser(t, db, "amy")
	species := testutil.SeedSpecies(t, db, "Dog")
	pet := testutil.SeedPet(t, db, "Rex", species.ID)
	status := testutil.SeedStatus(t, db, "Pending")
	activity := testutil.SeedActivity(t, db, "walk", testutil.Date(2026, time.April, 1), user.ID, pet.ID, status.ID)

	err := statusSvc.Delete(status.ID)
	if !apperr.IsConflict(err) {
		t.Fatalf("deleting a referenced status must conflict, got %v", err)
	}

	if err := activitySvc.Delete(activity.ID); err != nil {
		t.Fatalf("delete activity: %v", err)
	}
	if err := statusSvc.Delete(status.ID); err != nil {
		t.Fatalf("status should be deletable once unreferenced: %v", err)
	}
}

func TestPriorityDeleteProtected(t *testing.T) {
	db := testutil.DB(t)
	prioritySvc := services.NewPriorityService(db)
	eventSvc := services.NewHealthEventService(db)

	user := testutil.SeedUser(t, db, "amy")
	species := testutil.SeedSpecies(t, db, "Dog")
	pet := testutil.SeedPet(t, db, "Rex", species.ID)
	status := testutil.SeedStatus(t, db, "Pending")
	priority := testutil.SeedPriority(t, db, "High")
	event := testutil.SeedHealthEvent(t, db, "checkup", testutil.Date(2026, time.April, 1), user.ID, pet.ID, status.ID, priority.ID)

	err := prioritySvc.Delete(priority.ID)
	if !apperr.IsConflict(err) {
		t.Fatalf("deleting a referenced priority must conflict, got %v", err)
	}

	if err := eventSvc.Delete(event.ID); err != nil {
		t.Fatalf("delete health event: %v", err)
	}
	if err := prioritySvc.Delete(priority.ID); err != nil {
		t.Fatalf("priority should be deletable once unreferenced: %v", err)
	}
}

func TestSpeciesDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	svc := services.NewSpeciesService(db)

	dog := testutil.SeedSpecies(t, db, "Dog")
	cat := testutil.SeedSpecies(t, db, "Cat")
	rex := testutil.SeedPet(t, db, "Rex", dog.ID)
	milo := testutil.SeedPet(t, db, "Milo", cat.ID)
	user := testutil.SeedUser(t, db, "amy")
	status := testutil.SeedStatus(t, db, "Pending")
	testutil.SeedActivity(t, db, "walk", testutil.Date(2026, time.April, 1), user.ID, rex.ID, status.ID)
	testutil.SeedActivity(t, db, "feed", testutil.Date(2026, time.April, 1), user.ID, milo.ID, status.ID)

	if err := svc.Delete(dog.ID); err != nil {
		t.Fatalf("delete species: %v", err)
	}

	var pets int64
	if err := db.Model(&models.Pet{}).Count(&pets).Error; err != nil {
		t.Fatalf("count pets: %v", err)
	}
	if pets != 1 {
		t.Fatalf("only the cat should remain, got %d pets", pets)
	}
	var activities int64
	if err := db.Model(&models.Activity{}).Count(&activities).Error; err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if activities != 1 {
		t.Fatalf("only the cat's activity should remain, got %d", activities)
	}
}

func TestCatalogNameValidation(t *testing.T) {
	db := testutil.DB(t)
	svc := services.NewStatusService(db)

	if _, err := svc.Create(""); !apperr.IsValidation(err) {
		t.Fatalf("empty name must be rejected, got %v", err)
	}

	status, err := svc.Create("Pending")
	if err != nil {
		t.Fatalf("create status: %v", err)
	}
	if _, err := svc.Create("Pending"); !apperr.IsValidation(err) {
		t.Fatalf("duplicate name must be rejected, got %v", err)
	}

	other, err := svc.Create("Completed")
	if err != nil {
		t.Fatalf("create status: %v", err)
	}
	if _, err := svc.Update(other.ID, "Pending"); !apperr.IsValidation(err) {
		t.Fatalf("renaming onto an existing name must be rejected, got %v", err)
	}
	if _, err := svc.Update(status.ID, "Pending"); err != nil {
		t.Fatalf("keeping the same name on update should succeed: %v", err)
	}

	if err := svc.Delete(uuid.New()); !apperr.IsNotFound(err) {
		t.Fatalf("deleting an unknown status should be not-found, got %v", err)
	}
}
