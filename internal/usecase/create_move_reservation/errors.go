package create_move_reservation

import "errors"

var (
	// ErrNotAuthorized возвращается, когда сессия не прошла логин
	ErrNotAuthorized = errors.New("create_move_reservation: session is not authorized")

	// ErrSlotsNotLoaded возвращается, когда отправка идет до загрузки слотов
	ErrSlotsNotLoaded = errors.New("create_move_reservation: available slots are not loaded")

	// ErrLineRequired возвращается, когда линия лифта не выбрана
	ErrLineRequired = errors.New("create_move_reservation: elevator line is not chosen")

	// ErrSelectionIncomplete возвращается, когда выбор слота не завершен
	ErrSelectionIncomplete = errors.New("create_move_reservation: selection is incomplete")

	// ErrSubmissionInFlight возвращается, когда предыдущая отправка еще в полете
	ErrSubmissionInFlight = errors.New("create_move_reservation: submission is already in flight")

	// ErrAlreadyReserved возвращается, когда запись в этой сессии уже создана
	ErrAlreadyReserved = errors.New("create_move_reservation: reservation already created")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_move_reservation: internal error")
)
