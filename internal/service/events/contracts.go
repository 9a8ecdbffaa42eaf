package events

import (
	"context"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// PrevisitClient интерфейс клиента публичной части customer API
type PrevisitClient interface {
	GetEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error)
	GetEventForProject(ctx context.Context, projectID int64, uuid string) (*domain.PrevisitEvent, error)
}

// MoveClient интерфейс клиента move-части customer API
type MoveClient interface {
	GetEvent(ctx context.Context, uuid string) (*domain.MoveEvent, error)
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
