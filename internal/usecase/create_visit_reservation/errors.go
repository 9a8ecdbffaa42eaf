package create_visit_reservation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEventNotFound возвращается, когда событие осмотра не найдено
	ErrEventNotFound = errors.New("create_visit_reservation: event not found")

	// ErrEventExpired возвращается, когда период осмотра уже закончился
	ErrEventExpired = errors.New("create_visit_reservation: event period is over")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или не существует
	ErrSlotNotAvailable = errors.New("create_visit_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_visit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_visit_reservation: internal error")
)

// FieldError ошибка валидации одного поля формы
type FieldError struct {
	Field   string // Имя поля в snake_case
	Message string // Текст для показа пользователю
}

// ValidationError набор ошибок валидации формы
// Является ErrInvalidInput для errors.Is
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is позволяет errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
