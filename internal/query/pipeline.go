package query

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pawkeep/pawkeep-backend/internal/apperr"
)

// Page is one window of a filtered, ordered collection plus the
// metadata needed to render previous/next controls.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"total_count"`
	PageNumber  int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// List runs the pipeline for one kind: eager-loads the spec's
// relations, applies the compiled filter predicate, orders
// deterministically and slices a 1-based page. Requesting a page past
// the last one is an error; page 1 of an empty collection is not.
func List[T any](db *gorm.DB, spec Spec, params map[string]string, page int) (*Page[T], error) {
	if page < 1 {
		return nil, apperr.Validation("page number must be >= 1, got %d", page)
	}

	// Session makes the filtered query reusable for both the count and
	// the page fetch.
	filtered := applyFilters(db.Model(new(T)), db, spec.Filters, params).Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(spec.PageSize) - 1) / int64(spec.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		return nil, apperr.PageOutOfRange(page, totalPages)
	}

	q := filtered.Order(spec.OrderBy).
		Offset((page - 1) * spec.PageSize).
		Limit(spec.PageSize)
	for _, rel := range spec.Preloads {
		q = q.Preload(rel)
	}

	items := make([]T, 0, spec.PageSize)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:       items,
		TotalCount:  total,
		PageNumber:  page,
		PageSize:    spec.PageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// applyFilters compiles the recognized params into AND-combined
// conditions. Unrecognized params are ignored. Reference values that
// do not resolve are treated as unset rather than erroring: a search
// request stays valid even when the referenced entity is gone.
func applyFilters(q *gorm.DB, db *gorm.DB, fields []FilterField, params map[string]string) *gorm.DB {
	for _, f := range fields {
		value, ok := params[f.Param]
		if !ok || value == "" {
			continue
		}
		switch f.Rule {
		case TextContains:
			pattern := "%" + strings.ToLower(value) + "%"
			q = q.Where("LOWER("+f.Column+") LIKE ?", pattern)
		case RefEquals:
			id, err := uuid.Parse(value)
			if err != nil {
				continue
			}
			var n int64
			if err := db.Model(f.Ref).Where("id = ?", id).Count(&n).Error; err != nil || n == 0 {
				continue
			}
			q = q.Where(f.Column+" = ?", id)
		}
	}
	return q
}
