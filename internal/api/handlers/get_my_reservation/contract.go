package get_my_reservation

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

type ReservationsService interface {
	MyReservation(ctx context.Context, sess *session.Session) (*domain.MyReservations, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
