package get_visit_slots

import (
	"context"

	getVisitSlots "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_slots"
)

type GetVisitSlotsUseCase interface {
	Execute(ctx context.Context, req *getVisitSlots.Request) (*getVisitSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
