package customerapi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized возвращается, когда токен отклонен и обновить его не удалось
	ErrUnauthorized = errors.New("customerapi client: unauthorized")

	// ErrNotFound возвращается, когда ресурс не найден
	ErrNotFound = errors.New("customerapi client: not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("customerapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе customer API
	ErrInvalidResponse = errors.New("customerapi client: invalid response")
)

// APIError бизнес-ошибка из envelope customer API (code != 0)
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
