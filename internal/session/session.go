package session

import (
	"sync"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/flow"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/selection"
)

// Session состояние одной пользовательской сессии move-потока
// Держит upstream-клиент с cookie, выбор слота и состояние отправки
// Все поля после создания меняются только под Lock
type Session struct {
	mu sync.Mutex

	ID       string
	MoveUUID string

	// Unit заполняется после успешного логина
	Unit *domain.MoveUnit

	// Client привязан к сессии: в его jar живет upstream-cookie
	Client *moveapi.Client

	// Payload последний загруженный ответ available-slots
	Payload *domain.AvailabilityPayload

	// Machine конечный автомат выбора даты, времени и линии
	Machine *selection.Machine

	// Flow состояние отправки записи
	Flow *flow.Flow

	lastSeen time.Time
}

// Lock захватывает сессию на время обработки запроса
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock освобождает сессию
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// IsAuthorized сообщает, прошла ли сессия логин
func (s *Session) IsAuthorized() bool {
	return s.Unit != nil
}
