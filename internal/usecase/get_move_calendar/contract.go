package get_move_calendar

import (
	"context"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/session"
)

// SessionService интерфейс сервиса move-сессий
type SessionService interface {
	RefreshSlots(ctx context.Context, sess *session.Session) error
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
