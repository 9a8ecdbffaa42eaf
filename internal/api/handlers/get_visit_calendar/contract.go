package get_visit_calendar

import (
	"context"

	getVisitCalendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_calendar"
)

type GetVisitCalendarUseCase interface {
	Execute(ctx context.Context, req *getVisitCalendar.Request) (*getVisitCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
