package get_visit_slots

import (
	"github.com/m04kA/APT-ReservationService/internal/domain"
	getVisitSlots "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	EventID   int64       `json:"event_id"`
	DateBegin string      `json:"date_begin"`
	DateEnd   string      `json:"date_end"`
	TimeFirst string      `json:"time_first"`
	TimeLast  string      `json:"time_last"`
	TimeUnit  int         `json:"time_unit"`
	MaxLimit  int         `json:"max_limit"`
	Dates     []DateSlots `json:"dates"`
}

// DateSlots слоты одной даты
type DateSlots struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	Times       []Slot `json:"times"`
}

// Slot один слот времени
type Slot struct {
	Time        string `json:"time"`
	Available   int    `json:"available"`
	IsAvailable bool   `json:"is_available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getVisitSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		EventID:   resp.EventID,
		DateBegin: resp.DateBegin.Format(domain.DateFormat),
		DateEnd:   resp.DateEnd.Format(domain.DateFormat),
		TimeFirst: resp.TimeFirst.String(),
		TimeLast:  resp.TimeLast.String(),
		TimeUnit:  resp.TimeUnit,
		MaxLimit:  resp.MaxLimit,
		Dates:     make([]DateSlots, 0, len(resp.Dates)),
	}

	for _, ds := range resp.Dates {
		date := DateSlots{
			Date:        ds.Date.Format(domain.DateFormat),
			IsAvailable: ds.IsAvailable,
			Times:       make([]Slot, 0, len(ds.Times)),
		}
		for _, slot := range ds.Times {
			date.Times = append(date.Times, Slot{
				Time:        slot.Time.String(),
				Available:   slot.Available,
				IsAvailable: slot.IsAvailable,
			})
		}
		out.Dates = append(out.Dates, date)
	}

	return out
}
