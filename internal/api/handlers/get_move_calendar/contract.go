package get_move_calendar

import (
	"context"

	getMoveCalendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_move_calendar"
)

type GetMoveCalendarUseCase interface {
	Execute(ctx context.Context, req *getMoveCalendar.Request) (*getMoveCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
