package get_move_calendar

import "errors"

var (
	// ErrNotAuthorized возвращается, когда сессия не прошла логин
	ErrNotAuthorized = errors.New("get_move_calendar: session is not authorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_move_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_move_calendar: internal error")
)
