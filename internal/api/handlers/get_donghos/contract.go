package get_donghos

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

type UnitsService interface {
	GetDonghos(ctx context.Context, projectID int64, dong string) ([]domain.Dongho, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
