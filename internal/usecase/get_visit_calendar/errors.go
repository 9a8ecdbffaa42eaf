package get_visit_calendar

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие осмотра не найдено
	ErrEventNotFound = errors.New("get_visit_calendar: event not found")

	// ErrEventExpired возвращается, когда период осмотра уже закончился
	ErrEventExpired = errors.New("get_visit_calendar: event period is over")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_visit_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_visit_calendar: internal error")
)
