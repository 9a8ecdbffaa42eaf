package create_visit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/previsitapi"
)

// EventsService интерфейс сервиса событий
type EventsService interface {
	GetVisitEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error)
}

// ReservationClient интерфейс клиента записей на осмотр
type ReservationClient interface {
	GetAvailableSlots(ctx context.Context, uuid string) (*domain.AvailabilityPayload, error)
	CreateReservation(ctx context.Context, uuid string, req *previsitapi.CreateReservationRequest) (int64, error)
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
