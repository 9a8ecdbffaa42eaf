package move_selection

import (
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

type SessionService interface {
	Machine(sess *session.Session) (*selection.Machine, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
