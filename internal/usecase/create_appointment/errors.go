package create_appointment

import "errors"

var (
	// ErrTherapistNotFound возвращается, когда мастер не найден или деактивирован
	ErrTherapistNotFound = errors.New("create_appointment: therapist not found")

	// ErrStoreNotFound возвращается, когда салон не найден
	ErrStoreNotFound = errors.New("create_appointment: store not found")

	// ErrStoreMismatch возвращается, когда переданный storeId не совпадает
	// с салоном, которому принадлежит мастер
	ErrStoreMismatch = errors.New("create_appointment: store does not own this therapist")

	// ErrTimeConflict возвращается, когда интервал пересекается с существующей записью
	ErrTimeConflict = errors.New("create_appointment: time slot conflicts with existing appointment")

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за рабочее окно салона
	ErrOutsideBusinessHours = errors.New("create_appointment: time is outside business hours")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
