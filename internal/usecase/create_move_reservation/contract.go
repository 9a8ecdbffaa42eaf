package create_move_reservation

import (
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

// SessionService интерфейс сервиса move-сессий
type SessionService interface {
	Machine(sess *session.Session) (*selection.Machine, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
