package get_availability

import "errors"

var (
	// ErrTherapistNotFound возвращается, когда мастер не найден или деактивирован
	// Деактивированный мастер неотличим от отсутствующего для вызывающего кода
	ErrTherapistNotFound = errors.New("get_availability: therapist not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
