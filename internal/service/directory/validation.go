package directory

import (
	"fmt"
	"strings"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
	"github.com/Wu-ChengLiang/TMC-BookingService/pkg/types"
)

// validateStoreRequest проверяет бизнес-правила полей салона
func validateStoreRequest(name, address string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address exceeds %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}
	return nil
}

// validateTherapistRequest проверяет бизнес-правила полей мастера
func validateTherapistRequest(name, position string, yearsOfExperience int, specialties []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if len(position) > domain.MaxPositionLength {
		return fmt.Errorf("%w: position exceeds %d characters", ErrInvalidInput, domain.MaxPositionLength)
	}
	if yearsOfExperience < 0 {
		return fmt.Errorf("%w: yearsOfExperience cannot be negative", ErrInvalidInput)
	}
	if len(specialties) > domain.MaxSpecialties {
		return fmt.Errorf("%w: too many specialties, max %d", ErrInvalidInput, domain.MaxSpecialties)
	}
	for _, sp := range specialties {
		if strings.TrimSpace(sp) == "" {
			return fmt.Errorf("%w: specialty cannot be empty", ErrInvalidInput)
		}
	}
	return nil
}

// parseTime парсит строку "HH:MM" в TimeString
func parseTime(value string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", err
	}
	return ts, nil
}
