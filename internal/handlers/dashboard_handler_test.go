package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pawkeep/pawkeep-backend/internal/dto"
	"github.com/pawkeep/pawkeep-backend/internal/handlers"
	"github.com/pawkeep/pawkeep-backend/internal/testutil"
)

func TestDashboardSummary(t *testing.T) {
	db := testutil.DB(t)
	app := fiber.New()
	app.Get("/dashboard", handlers.NewDashboardHandler(db).Summary)

	amy := testutil.SeedUser(t, db, "amy")
	testutil.SeedUser(t, db, "ben")
	species := testutil.SeedSpecies(t, db, "Dog")
	pet := testutil.SeedPet(t, db, "Rex", species.ID)
	pending := testutil.SeedStatus(t, db, "Pending")
	completed := testutil.SeedStatus(t, db, "Completed")
	priority := testutil.SeedPriority(t, db, "High")

	date := testutil.Date(2026, time.April, 1)
	testutil.SeedActivity(t, db, "walk", date, amy.ID, pet.ID, pending.ID)
	testutil.SeedActivity(t, db, "feed", date, amy.ID, pet.ID, completed.ID)
	testutil.SeedHealthEvent(t, db, "checkup", date, amy.ID, pet.ID, pending.ID, priority.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if err != nil {
		t.Fatalf("dashboard request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Error bool                  `json:"error"`
		Data  dto.DashboardResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.Data.NumUsers != 2 {
		t.Fatalf("expected 2 users, got %d", body.Data.NumUsers)
	}
	if body.Data.NumPets != 1 {
		t.Fatalf("expected 1 pet, got %d", body.Data.NumPets)
	}
	if body.Data.NumPendingActivities != 1 {
		t.Fatalf("only the pending activity should count, got %d", body.Data.NumPendingActivities)
	}
	if body.Data.NumPendingHealthEvents != 1 {
		t.Fatalf("expected 1 pending health event, got %d", body.Data.NumPendingHealthEvents)
	}
}
