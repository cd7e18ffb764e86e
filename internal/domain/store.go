package domain

import (
	"time"

	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// Store represents a physical location with its own therapists and business hours
type Store struct {
	ID      int64
	Name    string
	Address string
	// Business hours form the single daily booking window for every therapist
	// owned by the store
	OpenTime  types.TimeString
	CloseTime types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessHours returns the store's daily booking window
func (s *Store) BusinessHours() (open, close types.TimeString) {
	return s.OpenTime, s.CloseTime
}

// HasValidHours returns true if the window is non-empty
func (s *Store) HasValidHours() bool {
	return s.OpenTime.IsBefore(s.CloseTime)
}
