package get_move_event

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

type EventsService interface {
	GetMoveEvent(ctx context.Context, uuid string) (*domain.MoveEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
