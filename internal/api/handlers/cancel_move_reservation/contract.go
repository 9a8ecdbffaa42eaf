package cancel_move_reservation

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/session"
)

type ReservationsService interface {
	Cancel(ctx context.Context, sess *session.Session, reservationID int64, reason *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
