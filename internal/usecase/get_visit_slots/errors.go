package get_visit_slots

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие осмотра не найдено
	ErrEventNotFound = errors.New("get_visit_slots: event not found")

	// ErrEventExpired возвращается, когда период осмотра уже закончился
	ErrEventExpired = errors.New("get_visit_slots: event period is over")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_visit_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_visit_slots: internal error")
)
