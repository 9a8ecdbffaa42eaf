package flow

import (
	"context"
	"errors"
	"sync"
)

// msgNetworkFailure общее сообщение для транспортных сбоев
// Показывается, когда сервер не вернул собственного текста ошибки
const msgNetworkFailure = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// State состояние потока отправки
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

// String возвращает имя состояния для логов и ответов API
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmitFunc один вызов эндпоинта создания записи
// Возвращает ID созданной записи
type SubmitFunc func(ctx context.Context) (int64, error)

// userFacingError ошибка с текстом, пригодным для показа пользователю
// Реализуется APIError интеграционных клиентов
type userFacingError interface {
	error
	UserMessage() string
}

// Flow поток отправки записи: Idle -> Submitting -> Succeeded | Failed
// Гарантирует не более одного запроса на вызов Submit и блокирует
// повторную отправку, пока предыдущая не завершилась
// Автоматических ретраев нет: из Failed выход только через Retry
type Flow struct {
	mu sync.Mutex

	state         State
	reservationID int64
	failureMsg    string
}

// New создает поток в состоянии Idle
func New() *Flow {
	return &Flow{state: StateIdle}
}

// Submit выполняет ровно один вызов submit
// Допустим только из Idle: Submitting означает дубль (запрос уже в полете),
// Failed требует предварительного Retry, Succeeded - запись уже создана
func (f *Flow) Submit(ctx context.Context, submit SubmitFunc) (int64, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return 0, ErrSubmissionInFlight
	case StateSucceeded:
		f.mu.Unlock()
		return 0, ErrAlreadySucceeded
	case StateFailed:
		f.mu.Unlock()
		return 0, ErrRetryRequired
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	id, err := submit(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = StateFailed
		f.failureMsg = messageFor(err)
		return 0, err
	}

	f.state = StateSucceeded
	f.reservationID = id
	return id, nil
}

// Retry переводит Failed -> Idle без повторной отправки
// Пользователь инициирует новую отправку отдельным вызовом Submit
func (f *Flow) Retry() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFailed {
		return ErrNotFailed
	}

	f.state = StateIdle
	f.failureMsg = ""
	return nil
}

// Reset возвращает поток в Idle из любого состояния
// Вызывается при входе на экран заново (navigate-away)
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = StateIdle
	f.reservationID = 0
	f.failureMsg = ""
}

// State возвращает текущее состояние
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ReservationID возвращает ID созданной записи (после Succeeded)
func (f *Flow) ReservationID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reservationID
}

// FailureMessage возвращает текст последней ошибки для показа пользователю
func (f *Flow) FailureMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failureMsg
}

// messageFor выбирает текст для пользователя: сообщение из envelope сервера,
// если оно есть, иначе общий текст о сетевой ошибке
func messageFor(err error) string {
	var ue userFacingError
	if errors.As(err, &ue) && ue.UserMessage() != "" {
		return ue.UserMessage()
	}
	return msgNetworkFailure
}
