package get_visit_event

import (
	"github.com/m04kA/APT-ReservationService/internal/domain"
)

// EventResponse HTTP response model
type EventResponse struct {
	ID        int64   `json:"id"`
	UUID      string  `json:"uuid"`
	ProjectID int64   `json:"project_id"`
	Name      string  `json:"name"`
	DateBegin string  `json:"date_begin"`
	DateEnd   string  `json:"date_end"`
	MaxLimit  *int    `json:"max_limit,omitempty"`
	TimeFirst string  `json:"time_first"`
	TimeLast  string  `json:"time_last"`
	TimeUnit  int     `json:"time_unit"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// FromDomain конвертирует событие в HTTP response
func FromDomain(event *domain.PrevisitEvent) *EventResponse {
	return &EventResponse{
		ID:        event.ID,
		UUID:      event.UUID,
		ProjectID: event.ProjectID,
		Name:      event.Name,
		DateBegin: event.DateBegin.Format(domain.DateFormat),
		DateEnd:   event.DateEnd.Format(domain.DateFormat),
		MaxLimit:  event.MaxLimit,
		TimeFirst: event.TimeFirst.String(),
		TimeLast:  event.TimeLast.String(),
		TimeUnit:  event.TimeUnit,
		ImageURL:  event.ImageURL,
	}
}
