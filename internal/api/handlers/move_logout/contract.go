package move_logout

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/session"
)

type SessionService interface {
	Logout(ctx context.Context, sess *session.Session)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
