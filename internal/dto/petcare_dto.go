package dto

import "github.com/google/uuid"

// Dates travel as "2006-01-02" strings and are parsed by the services.

type UserCreateRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type UserUpdateRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type PetRequest struct {
	Name      string      `json:"name"`
	SpeciesID uuid.UUID   `json:"species_id"`
	Breed     string      `json:"breed"`
	Weight    float64     `json:"weight"`
	Height    float64     `json:"height"`
	BirthDate string      `json:"birth_date"`
	OwnerIDs  []uuid.UUID `json:"owner_ids"`
}

type ActivityRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ScheduledDate string    `json:"scheduled_date"`
	UserID        uuid.UUID `json:"user_id"`
	PetID         uuid.UUID `json:"pet_id"`
	StatusID      uuid.UUID `json:"status_id"`
}

type HealthEventRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ScheduledDate string    `json:"scheduled_date"`
	UserID        uuid.UUID `json:"user_id"`
	PetID         uuid.UUID `json:"pet_id"`
	StatusID      uuid.UUID `json:"status_id"`
	PriorityID    uuid.UUID `json:"priority_id"`
}

// NameRequest covers the single-field catalog kinds (species, status,
// priority).
type NameRequest struct {
	Name string `json:"name"`
}

type ToggleOwnershipResponse struct {
	PetID uuid.UUID `json:"pet_id"`
	Owned bool      `json:"owned"`
}

type DashboardResponse struct {
	NumUsers               int64 `json:"num_users"`
	NumPets                int64 `json:"num_pets"`
	NumPendingActivities   int64 `json:"num_pending_activities"`
	NumPendingHealthEvents int64 `json:"num_pending_health_events"`
}
