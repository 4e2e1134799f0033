// Package query implements the shared list pipeline: each entity kind
// declares a Spec (filter fields, eager-loaded relations, ordering,
// page size) and List applies it generically, so no kind needs a
// bespoke filter implementation.
package query

import (
	"github.com/pawkeep/pawkeep-backend/internal/models"
)

type Kind string

const (
	KindUser        Kind = "user"
	KindPet         Kind = "pet"
	KindSpecies     Kind = "species"
	KindStatus      Kind = "status"
	KindPriority    Kind = "priority"
	KindActivity    Kind = "activity"
	KindHealthEvent Kind = "healthevent"
)

// MatchRule decides how a filter parameter value constrains a column.
type MatchRule int

const (
	// TextContains matches case-insensitive substrings. An empty value
	// imposes no constraint.
	TextContains MatchRule = iota
	// RefEquals matches a referenced entity's id exactly. Values that
	// do not parse as a UUID or do not resolve in the referenced table
	// are skipped (fail-soft), never rejected.
	RefEquals
)

// FilterField binds one recognized query parameter to a column.
type FilterField struct {
	Param  string
	Column string
	Rule   MatchRule
	// Ref is a model instance of the referenced kind, used to verify
	// that a RefEquals value resolves before it constrains the query.
	Ref any
}

// Spec declares the full list behavior for one kind. Page sizes are
// fixed per kind, not request-configurable.
type Spec struct {
	Kind     Kind
	PageSize int
	Preloads []string
	OrderBy  string
	Filters  []FilterField
}

var specs = map[Kind]Spec{
	KindUser: {
		Kind:     KindUser,
		PageSize: 5,
		OrderBy:  "username ASC",
		Filters: []FilterField{
			{Param: "username", Column: "username", Rule: TextContains},
		},
	},
	KindPet: {
		Kind:     KindPet,
		PageSize: 5,
		Preloads: []string{"Species", "Owners"},
		OrderBy:  "name ASC",
		Filters: []FilterField{
			{Param: "name", Column: "name", Rule: TextContains},
		},
	},
	KindSpecies: {
		Kind:     KindSpecies,
		PageSize: 5,
		OrderBy:  "name ASC, id ASC",
		Filters: []FilterField{
			{Param: "name", Column: "name", Rule: TextContains},
		},
	},
	KindStatus: {
		Kind:     KindStatus,
		PageSize: 5,
		OrderBy:  "name ASC",
		Filters: []FilterField{
			{Param: "name", Column: "name", Rule: TextContains},
		},
	},
	KindPriority: {
		Kind:     KindPriority,
		PageSize: 5,
		OrderBy:  "name ASC",
		Filters: []FilterField{
			{Param: "name", Column: "name", Rule: TextContains},
		},
	},
	KindActivity: {
		Kind:     KindActivity,
		PageSize: 2,
		Preloads: []string{"User", "Status", "Pet"},
		OrderBy:  "scheduled_date ASC, title ASC",
		Filters: []FilterField{
			{Param: "title", Column: "title", Rule: TextContains},
			{Param: "status", Column: "status_id", Rule: RefEquals, Ref: &models.Status{}},
			{Param: "pets", Column: "pet_id", Rule: RefEquals, Ref: &models.Pet{}},
			{Param: "users", Column: "user_id", Rule: RefEquals, Ref: &models.User{}},
		},
	},
	KindHealthEvent: {
		Kind:     KindHealthEvent,
		PageSize: 2,
		Preloads: []string{"User", "Status", "Pet", "Priority"},
		OrderBy:  "scheduled_date ASC, title ASC",
		Filters: []FilterField{
			{Param: "title", Column: "title", Rule: TextContains},
			{Param: "status", Column: "status_id", Rule: RefEquals, Ref: &models.Status{}},
			{Param: "priority", Column: "priority_id", Rule: RefEquals, Ref: &models.Priority{}},
			{Param: "pets", Column: "pet_id", Rule: RefEquals, Ref: &models.Pet{}},
			{Param: "users", Column: "user_id", Rule: RefEquals, Ref: &models.User{}},
		},
	},
}

// SpecFor returns the declared spec for a kind.
func SpecFor(kind Kind) Spec {
	return specs[kind]
}
