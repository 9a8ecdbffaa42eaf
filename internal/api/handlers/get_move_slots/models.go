package get_move_slots

import (
	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	EventID   int64       `json:"event_id"`
	DateBegin string      `json:"date_begin"`
	DateEnd   string      `json:"date_end"`
	TimeFirst string      `json:"time_first"`
	TimeLast  string      `json:"time_last"`
	TimeUnit  int         `json:"time_unit"`
	Dates     []DateSlots `json:"dates"`
}

// DateSlots слоты одной даты
type DateSlots struct {
	Date        string `json:"date"`
	IsAvailable bool   `json:"is_available"`
	Times       []Slot `json:"times"`
}

// Slot один слот времени со свободными линиями лифтов
type Slot struct {
	Time           string   `json:"time"`
	AvailableLines []string `json:"available_lines"`
	IsAvailable    bool     `json:"is_available"`
}

// FromDomain конвертирует слоты в HTTP response
func FromDomain(payload *domain.AvailabilityPayload) *SlotsResponse {
	out := &SlotsResponse{
		EventID:   payload.EventID,
		DateBegin: payload.DateBegin.Format(domain.DateFormat),
		DateEnd:   payload.DateEnd.Format(domain.DateFormat),
		TimeFirst: payload.TimeFirst.String(),
		TimeLast:  payload.TimeLast.String(),
		TimeUnit:  payload.TimeUnit,
		Dates:     make([]DateSlots, 0, len(payload.Dates)),
	}

	for _, ds := range payload.Dates {
		date := DateSlots{
			Date:        ds.Date.Format(domain.DateFormat),
			IsAvailable: ds.HasAvailableTime(),
			Times:       make([]Slot, 0, len(ds.Times)),
		}
		for _, ts := range ds.Times {
			date.Times = append(date.Times, Slot{
				Time:           ts.Time.String(),
				AvailableLines: ts.AvailableLines,
				IsAvailable:    ts.IsAvailable(),
			})
		}
		out.Dates = append(out.Dates, date)
	}

	return out
}
