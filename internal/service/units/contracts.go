package units

import (
	"context"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// CustomerClient интерфейс клиента закрытой части customer API
type CustomerClient interface {
	GetDongs(ctx context.Context, projectID int64) ([]string, error)
	GetDonghos(ctx context.Context, projectID int64, dong string) ([]domain.Dongho, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
