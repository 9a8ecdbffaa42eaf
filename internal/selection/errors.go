package selection

import "errors"

var (
	// ErrDateUnavailable возвращается при выборе недоступной даты
	ErrDateUnavailable = errors.New("date is not available")

	// ErrTimeUnavailable возвращается при выборе недоступного или чужого времени
	ErrTimeUnavailable = errors.New("time slot is not available")

	// ErrLineUnavailable возвращается при выборе занятой или неизвестной линии
	ErrLineUnavailable = errors.New("elevator line is not available")

	// ErrNoDateChosen возвращается при выборе времени без выбранной даты
	ErrNoDateChosen = errors.New("date must be chosen first")

	// ErrNoTimeChosen возвращается при выборе линии без выбранного времени
	ErrNoTimeChosen = errors.New("time must be chosen first")

	// ErrLinePending возвращается при подтверждении до явного выбора линии
	ErrLinePending = errors.New("elevator line choice is pending")

	// ErrSelectionIncomplete возвращается при подтверждении незавершенного выбора
	ErrSelectionIncomplete = errors.New("selection is incomplete")

	// ErrAlreadyConfirmed возвращается при любом переходе после подтверждения
	ErrAlreadyConfirmed = errors.New("selection is already confirmed")
)
