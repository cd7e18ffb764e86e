package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	// Запись при этом остается неизменной
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTooLateToCancel возвращается, когда клиент отменяет запись менее
	// чем за 2 часа до начала сеанса
	ErrTooLateToCancel = errors.New("too late to cancel appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
