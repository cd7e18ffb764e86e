package directory

import "errors"

var (
	// ErrStoreNotFound возвращается, когда салон не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrTherapistNotFound возвращается, когда мастер не найден
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrHasActiveDependents возвращается при попытке удалить ресурс,
	// от которого зависят активные записи или мастера.
	// Вместо удаления вызывающая сторона должна деактивировать ресурс.
	ErrHasActiveDependents = errors.New("resource has active dependents")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
