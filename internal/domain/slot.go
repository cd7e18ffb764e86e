package domain

import "github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"

// TimeSlot represents a fixed-width candidate booking interval derived from
// business hours. Slots are computed per therapist per date and never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Overlaps reports whether the half-open interval [start, end) intersects the slot
func (s *TimeSlot) Overlaps(start, end types.TimeString) bool {
	return s.StartTime.IsBefore(end) && start.IsBefore(s.EndTime)
}
