package get_my_reservation

import (
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// ReservationItem одна запись на заезд
type ReservationItem struct {
	ID              int64   `json:"id"`
	Line            string  `json:"line"`
	ReservationDate string  `json:"reservation_date"`
	ReservationTime string  `json:"reservation_time"`
	CreatedAt       string  `json:"created_at"`
	CanceledAt      *string `json:"canceled_at,omitempty"`
	CanceledReason  *string `json:"canceled_reason,omitempty"`
	IsCanceled      bool    `json:"is_canceled"`
}

// MyReservationResponse HTTP response model
type MyReservationResponse struct {
	Dong    string            `json:"dong"`
	Ho      string            `json:"ho"`
	Active  *ReservationItem  `json:"active,omitempty"`
	History []ReservationItem `json:"history"`
}

// FromDomain конвертирует записи сессии в HTTP response
func FromDomain(my *domain.MyReservations) *MyReservationResponse {
	out := &MyReservationResponse{
		Dong:    my.Dong,
		Ho:      my.Ho,
		History: make([]ReservationItem, 0, len(my.History)),
	}

	if my.Active != nil {
		item := itemFromDomain(my.Active)
		out.Active = &item
	}
	for i := range my.History {
		out.History = append(out.History, itemFromDomain(&my.History[i]))
	}

	return out
}

func itemFromDomain(r *domain.MoveReservation) ReservationItem {
	item := ReservationItem{
		ID:              r.ID,
		Line:            r.EvLine,
		ReservationDate: r.Date.Format(domain.DateFormat),
		ReservationTime: r.Time.String(),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		CanceledReason:  r.CanceledReason,
		IsCanceled:      r.IsCanceled,
	}
	if r.CanceledAt != nil {
		canceledAt := r.CanceledAt.Format(time.RFC3339)
		item.CanceledAt = &canceledAt
	}
	return item
}
