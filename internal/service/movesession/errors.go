package movesession

import "errors"

var (
	// ErrLoginFailed возвращается, когда upstream отклонил учетные данные
	ErrLoginFailed = errors.New("login failed")

	// ErrNotAuthorized возвращается, когда операция требует пройденного логина
	ErrNotAuthorized = errors.New("session is not authorized")

	// ErrSlotsNotLoaded возвращается, когда выбор делается до загрузки слотов
	ErrSlotsNotLoaded = errors.New("available slots are not loaded")

	// ErrEventNotFound возвращается, когда событие заезда не найдено
	ErrEventNotFound = errors.New("move event not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("movesession service: internal error")
)
