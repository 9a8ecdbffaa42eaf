package create_visit_reservation

import (
	"github.com/m04kA/APT-ReservationService/internal/domain"
	createVisitReservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_visit_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	DonghoID        int64   `json:"dongho_id"`
	ReservationDate string  `json:"reservation_date"` // "2024-12-05"
	ReservationTime string  `json:"reservation_time"` // "09:30"
	WriterName      string  `json:"writer_name"`
	WriterPhone     string  `json:"writer_phone"`
	Memo            *string `json:"memo,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(eventUUID string) *createVisitReservation.Request {
	return &createVisitReservation.Request{
		EventUUID:   eventUUID,
		DonghoID:    r.DonghoID,
		Date:        r.ReservationDate,
		Time:        r.ReservationTime,
		WriterName:  r.WriterName,
		WriterPhone: r.WriterPhone,
		Memo:        r.Memo,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createVisitReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		ReservationDate: resp.Date.Format(domain.DateFormat),
		ReservationTime: resp.Time.String(),
	}
}
