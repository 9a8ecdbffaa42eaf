package domain

import (
	"time"

	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// MoveReservation запись на заезд (активная или из истории)
type MoveReservation struct {
	ID         int64
	EvLine     string
	Date       time.Time
	Time       types.TimeString
	CreatedAt  time.Time
	CanceledAt *time.Time
	// CanceledReason причина отмены, заполняется только для отмененных записей
	CanceledReason *string
	IsCanceled     bool
}

// IsActive возвращает true, если запись не отменена
func (r *MoveReservation) IsActive() bool {
	return !r.IsCanceled
}

// MyReservations ответ customer API о записях текущей сессии
type MyReservations struct {
	Dong    string
	Ho      string
	Active  *MoveReservation
	History []MoveReservation
}
