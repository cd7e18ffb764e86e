package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	// Стандартное окно 09:00-21:00 дает 12 часовых слотов
	slots := generateTimeSlots("09:00", "21:00", 60)

	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("20:00"), slots[11].StartTime)
	assert.Equal(t, types.TimeString("21:00"), slots[11].EndTime)

	// Все слоты упорядочены и свободны
	for i, slot := range slots {
		assert.True(t, slot.Available)
		if i > 0 {
			assert.Equal(t, slots[i-1].EndTime, slot.StartTime)
		}
	}
}

func TestGenerateTimeSlots_PartialLastHour(t *testing.T) {
	// Неполный последний час отбрасывается
	slots := generateTimeSlots("09:00", "20:30", 60)

	require.Len(t, slots, 11)
	assert.Equal(t, types.TimeString("20:00"), slots[10].EndTime)
}

func TestGenerateTimeSlots_DegenerateWindows(t *testing.T) {
	assert.Empty(t, generateTimeSlots("21:00", "09:00", 60))
	assert.Empty(t, generateTimeSlots("10:00", "10:00", 60))
	assert.Empty(t, generateTimeSlots("09:00", "21:00", 0))
	assert.Empty(t, generateTimeSlots("09:00", "21:00", -60))
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first := generateTimeSlots("09:00", "21:00", 60)
	second := generateTimeSlots("09:00", "21:00", 60)
	assert.Equal(t, first, second)
}

func TestMarkUnavailableSlots(t *testing.T) {
	appointments := []*domain.Appointment{
		{
			StartTime: "10:30",
			EndTime:   "11:30",
			Status:    domain.StatusConfirmed,
		},
	}

	slots := generateTimeSlots("09:00", "13:00", 60)
	require.Len(t, slots, 4)

	markUnavailableSlots(slots, appointments)

	// Запись 10:30-11:30 занимает слоты 10:00-11:00 и 11:00-12:00
	assert.True(t, slots[0].Available)  // 09:00-10:00
	assert.False(t, slots[1].Available) // 10:00-11:00
	assert.False(t, slots[2].Available) // 11:00-12:00
	assert.True(t, slots[3].Available)  // 12:00-13:00
}

func TestMarkUnavailableSlots_AbuttingDoesNotBlock(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
	}

	slots := generateTimeSlots("09:00", "12:00", 60)
	markUnavailableSlots(slots, appointments)

	// Запись заканчивается ровно в 10:00 - слот 10:00-11:00 свободен
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestMarkUnavailableSlots_TerminalStatusesIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		{StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCompleted},
		{StartTime: "11:00", EndTime: "12:00", Status: domain.StatusNoShow},
	}

	slots := generateTimeSlots("09:00", "12:00", 60)
	markUnavailableSlots(slots, appointments)

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s must stay available", slot.StartTime)
	}
}
