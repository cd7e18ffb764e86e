package domain

import "time"

// TherapistStatus represents the visibility of a therapist
type TherapistStatus string

const (
	TherapistActive   TherapistStatus = "active"
	TherapistInactive TherapistStatus = "inactive"
)

// Therapist represents a bookable resource exclusively owned by one store
type Therapist struct {
	ID                int64
	StoreID           int64
	Name              string
	Position          string
	YearsOfExperience int
	Specialties       []string
	Status            TherapistStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive returns true if the therapist is visible in search and availability
func (t *Therapist) IsActive() bool {
	return t.Status == TherapistActive
}
