package create_visit_reservation

import (
	"context"

	createVisitReservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_visit_reservation"
)

type CreateVisitReservationUseCase interface {
	Execute(ctx context.Context, req *createVisitReservation.Request) (*createVisitReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
