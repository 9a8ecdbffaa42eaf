package get_move_slots

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/session"
)

type SessionService interface {
	RefreshSlots(ctx context.Context, sess *session.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
