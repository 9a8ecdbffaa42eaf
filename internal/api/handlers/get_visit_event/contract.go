package get_visit_event

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

type EventsService interface {
	GetVisitEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error)
	GetVisitEventForProject(ctx context.Context, projectID int64, uuid string) (*domain.PrevisitEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
