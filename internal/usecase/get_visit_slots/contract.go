package get_visit_slots

import (
	"context"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// EventsService интерфейс сервиса событий
type EventsService interface {
	GetVisitEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error)
}

// SlotsClient интерфейс клиента слотов осмотра
type SlotsClient interface {
	GetAvailableSlots(ctx context.Context, uuid string) (*domain.AvailabilityPayload, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
