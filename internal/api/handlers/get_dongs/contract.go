package get_dongs

import "context"

type UnitsService interface {
	GetDongs(ctx context.Context, projectID int64) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
