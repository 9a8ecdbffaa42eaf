package movesession

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
)

// ClientFactory интерфейс фабрики upstream-клиентов move-потока
type ClientFactory interface {
	NewClient() *moveapi.Client
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
