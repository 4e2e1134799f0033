package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
)

const dateLayout = "2006-01-02"

func parseDate(value, field string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return datatypes.Date{}, apperr.Validation("%s must be a date in YYYY-MM-DD format", field)
	}
	return datatypes.Date(t), nil
}

// requireRef validates that a required reference resolves. A broken
// reference on create/update is a validation failure, not a NotFound:
// the target of the operation is the entity being written, not the
// referenced one.
func requireRef(db *gorm.DB, ref any, kind string, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Validation("%s reference is required", kind)
	}
	var n int64
	if err := db.Model(ref).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return apperr.Validation("%s %s does not exist", kind, id)
	}
	return nil
}

// ensureUnique enforces a global uniqueness constraint ahead of the
// database index so the caller gets a clean validation error.
// excludeID skips the row being updated.
func ensureUnique(db *gorm.DB, model any, column, value string, excludeID uuid.UUID) error {
	q := db.Model(model).Where(column+" = ?", value)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return apperr.Validation("%s %q is already taken", column, value)
	}
	return nil
}

func validateMeasure(value float64, field string) error {
	if value < 0 {
		return apperr.Validation("%s must not be negative", field)
	}
	if value > 999.99 {
		return apperr.Validation("%s must not exceed 999.99", field)
	}
	return nil
}

func notFoundOr(err error, kind string, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(kind, id)
	}
	return err
}
