package move_login

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

type SessionService interface {
	Login(ctx context.Context, moveUUID string, req *moveapi.LoginRequest) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
