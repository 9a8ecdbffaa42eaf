package reservations

import "errors"

var (
	// ErrNotAuthorized возвращается, когда операция требует пройденного логина
	ErrNotAuthorized = errors.New("session is not authorized")

	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
