package domain

import (
	"time"

	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// PrevisitEvent событие сопровождаемого осмотра (사전방문)
// Публичное, доступ по UUID без аутентификации
type PrevisitEvent struct {
	ID        int64
	UUID      string
	ProjectID int64
	Name      string
	DateBegin time.Time
	DateEnd   time.Time
	MaxLimit  *int
	TimeFirst types.TimeString
	TimeLast  types.TimeString
	TimeUnit  int
	ImageURL  *string
}

// IsExpired возвращает true, если период записи на осмотр уже закончился
func (e *PrevisitEvent) IsExpired(now time.Time) bool {
	return DateOnly(e.DateEnd).Before(DateOnly(now))
}

// MoveEvent событие записи на заезд (이사예약)
// Операции с ним требуют сессии, выданной при логине
type MoveEvent struct {
	ID          int64
	UUID        string
	ProjectUUID string
	DateBegin   time.Time
	DateEnd     time.Time
	TimeFirst   types.TimeString
	TimeLast    types.TimeString
	TimeUnit    int
	Status      string
}

// IsExpired возвращает true, если период записи на заезд уже закончился
func (e *MoveEvent) IsExpired(now time.Time) bool {
	return DateOnly(e.DateEnd).Before(DateOnly(now))
}
