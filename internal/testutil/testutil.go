// Package testutil bootstraps an isolated in-memory database per test
// and provides seed helpers for the domain entities.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/pawkeep/pawkeep-backend/internal/database"
	"github.com/pawkeep/pawkeep-backend/internal/models"
)

// DB opens a fresh in-memory SQLite database and migrates the full
// schema. Each call is fully isolated from other tests.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	// A single connection keeps every session on the same in-memory DB.
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(database.Models()...); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// Date builds a datatypes.Date for fixtures.
func Date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func SeedUser(tb testing.TB, db *gorm.DB, username string) *models.User {
	tb.Helper()
	u := &models.User{
		ID:       uuid.New(),
		Username: username,
		Password: "pw",
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedSpecies(tb testing.TB, db *gorm.DB, name string) *models.Species {
	tb.Helper()
	s := &models.Species{ID: uuid.New(), Name: name}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed species: %v", err)
	}
	return s
}

func SeedStatus(tb testing.TB, db *gorm.DB, name string) *models.Status {
	tb.Helper()
	s := &models.Status{ID: uuid.New(), Name: name}
	if err := db.Create(s).Error; err != nil {
		tb.Fatalf("seed status: %v", err)
	}
	return s
}

func SeedPriority(tb testing.TB, db *gorm.DB, name string) *models.Priority {
	tb.Helper()
	p := &models.Priority{ID: uuid.New(), Name: name}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed priority: %v", err)
	}
	return p
}

func SeedPet(tb testing.TB, db *gorm.DB, name string, speciesID uuid.UUID) *models.Pet {
	tb.Helper()
	p := &models.Pet{
		ID:        uuid.New(),
		Name:      name,
		SpeciesID: speciesID,
		Breed:     "test",
		Weight:    10.3,
		Height:    20.5,
		BirthDate: Date(2020, time.January, 1),
	}
	if err := db.Create(p).Error; err != nil {
		tb.Fatalf("seed pet: %v", err)
	}
	return p
}

func SeedActivity(tb testing.TB, db *gorm.DB, title string, date datatypes.Date, userID, petID, statusID uuid.UUID) *models.Activity {
	tb.Helper()
	a := &models.Activity{
		ID:            uuid.New(),
		Title:         title,
		Description:   "test",
		ScheduledDate: date,
		UserID:        userID,
		PetID:         petID,
		StatusID:      statusID,
	}
	if err := db.Create(a).Error; err != nil {
		tb.Fatalf("seed activity: %v", err)
	}
	return a
}

func SeedHealthEvent(tb testing.TB, db *gorm.DB, title string, date datatypes.Date, userID, petID, statusID, priorityID uuid.UUID) *models.HealthEvent {
	tb.Helper()
	e := &models.HealthEvent{
		ID:            uuid.New(),
		Title:         title,
		Description:   "test",
		ScheduledDate: date,
		UserID:        userID,
		PetID:         petID,
		StatusID:      statusID,
		PriorityID:    priorityID,
	}
	if err := db.Create(e).Error; err != nil {
		tb.Fatalf("seed health event: %v", err)
	}
	return e
}
