package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed skips confirmation", StatusPending, StatusCompleted, false},
		{"pending to no_show", StatusPending, StatusNoShow, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to no_show", StatusConfirmed, StatusNoShow, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled cannot be reopened", StatusCancelled, StatusPending, false},
		{"no_show is terminal", StatusNoShow, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, appt.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_IsTerminal(t *testing.T) {
	for _, status := range TerminalStatuses {
		appt := &Appointment{Status: status}
		assert.True(t, appt.IsTerminal(), "status %s must be terminal", status)
	}
	for _, status := range ActiveStatuses {
		appt := &Appointment{Status: status}
		assert.False(t, appt.IsTerminal(), "status %s must not be terminal", status)
	}
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Appointment{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Appointment{Status: StatusNoShow}).IsActive())
}

func TestAppointment_Overlaps(t *testing.T) {
	appt := &Appointment{
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	}

	// Частичное пересечение
	assert.True(t, appt.Overlaps("10:30", "11:30"))
	assert.True(t, appt.Overlaps("09:30", "10:30"))

	// Полное вложение в обе стороны
	assert.True(t, appt.Overlaps("10:15", "10:45"))
	assert.True(t, appt.Overlaps("09:00", "12:00"))

	// Граничащие интервалы не пересекаются
	assert.False(t, appt.Overlaps("09:00", "10:00"))
	assert.False(t, appt.Overlaps("11:00", "12:00"))

	// Непересекающиеся
	assert.False(t, appt.Overlaps("08:00", "09:00"))
	assert.False(t, appt.Overlaps("12:00", "13:00"))
}

func TestAppointment_StartsAt(t *testing.T) {
	appt := &Appointment{
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("14:00"),
	}

	startsAt, err := appt.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC), startsAt)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("pending"))
	assert.True(t, ValidStatus("no_show"))
	assert.False(t, ValidStatus("unknown"))
	assert.False(t, ValidStatus(""))
}

func TestStore_HasValidHours(t *testing.T) {
	valid := &Store{OpenTime: "09:00", CloseTime: "21:00"}
	assert.True(t, valid.HasValidHours())

	inverted := &Store{OpenTime: "21:00", CloseTime: "09:00"}
	assert.False(t, inverted.HasValidHours())

	empty := &Store{OpenTime: "10:00", CloseTime: "10:00"}
	assert.False(t, empty.HasValidHours())
}
