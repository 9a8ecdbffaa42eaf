package moveapi

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound возвращается, когда событие заезда не найдено по UUID
	ErrEventNotFound = errors.New("move event not found")

	// ErrUnauthorized возвращается, когда upstream-сессия отсутствует или истекла
	ErrUnauthorized = errors.New("move session is not authorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("moveapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе customer API
	ErrInvalidResponse = errors.New("moveapi client: invalid response")
)

// APIError бизнес-ошибка из envelope customer API (code != 0)
// Message предназначен для показа пользователю как есть
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("customer api error: code=%d message=%q", e.Code, e.Message)
}

// UserMessage возвращает текст ошибки для пользователя
func (e *APIError) UserMessage() string {
	return e.Message
}
