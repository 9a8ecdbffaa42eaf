package create_move_reservation

import (
	"context"

	createMoveReservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_move_reservation"
)

type CreateMoveReservationUseCase interface {
	Execute(ctx context.Context, req *createMoveReservation.Request) (*createMoveReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
