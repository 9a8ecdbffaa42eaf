package events

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено по UUID
	ErrEventNotFound = errors.New("event not found")

	// ErrEventExpired возвращается, когда период события уже закончился
	ErrEventExpired = errors.New("event period is over")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("events service: internal error")
)
