package flow

import "errors"

var (
	// ErrSubmissionInFlight возвращается при Submit, пока запрос уже в полете
	ErrSubmissionInFlight = errors.New("submission is already in flight")

	// ErrAlreadySucceeded возвращается при Submit после успешной отправки
	ErrAlreadySucceeded = errors.New("submission already succeeded")

	// ErrRetryRequired возвращается при Submit из Failed без Retry
	ErrRetryRequired = errors.New("retry is required before resubmitting")

	// ErrNotFailed возвращается при Retry не из состояния Failed
	ErrNotFailed = errors.New("flow is not in failed state")
)
