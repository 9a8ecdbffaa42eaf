package previsitapi

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound возвращается, когда событие осмотра не найдено по UUID
	ErrEventNotFound = errors.New("previsit event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("previsitapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе customer API
	ErrInvalidResponse = errors.New("previsitapi client: invalid response")
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
