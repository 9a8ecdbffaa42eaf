package previsitapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// envelope общий конверт ответов customer API
// code == 0 означает успех, иначе message содержит текст для пользователя
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// previsitData событие осмотра из customer API
type previsitData struct {
	ID           int64   `json:"id"`
	UUID         string  `json:"uuid"`
	ProjectID    int64   `json:"project_id"`
	Name         string  `json:"name"`
	DateBegin    string  `json:"date_begin"`
	DateEnd      string  `json:"date_end"`
	MaxLimit     *int    `json:"max_limit"`
	TimeFirst    string  `json:"time_first"`
	TimeLast     string  `json:"time_last"`
	TimeUnit     int     `json:"time_unit"`
	ImageFileID  *int64  `json:"image_file_id"`
	ImageFileURL *string `json:"image_file_url"`
}

func (d *previsitData) toDomain() (*domain.PrevisitEvent, error) {
	begin, err := time.Parse(domain.DateFormat, d.DateBegin)
	if err != nil {
		return nil, fmt.Errorf("invalid date_begin %q: %v", d.DateBegin, err)
	}
	end, err := time.Parse(domain.DateFormat, d.DateEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid date_end %q: %v", d.DateEnd, err)
	}
	first, err := types.NewTimeStringFromString(d.TimeFirst)
	if err != nil {
		return nil, err
	}
	last, err := types.NewTimeStringFromString(d.TimeLast)
	if err != nil {
		return nil, err
	}

	return &domain.PrevisitEvent{
		ID:        d.ID,
		UUID:      d.UUID,
		ProjectID: d.ProjectID,
		Name:      d.Name,
		DateBegin: begin,
		DateEnd:   end,
		MaxLimit:  d.MaxLimit,
		TimeFirst: first,
		TimeLast:  last,
		TimeUnit:  d.TimeUnit,
		ImageURL:  d.ImageFileURL,
	}, nil
}

// timeSlotData слот времени с остатком мест
type timeSlotData struct {
	Time      string `json:"time"`
	Available int    `json:"available"`
}

// dateSlotData слоты одной даты
type dateSlotData struct {
	Date  string         `json:"date"`
	Times []timeSlotData `json:"times"`
}

// availableSlotsData ответ о доступных слотах осмотра
type availableSlotsData struct {
	PrevisitID int64          `json:"previsit_id"`
	DateBegin  string         `json:"date_begin"`
	DateEnd    string         `json:"date_end"`
	TimeFirst  string         `json:"time_first"`
	TimeLast   string         `json:"time_last"`
	TimeUnit   int            `json:"time_unit"`
	MaxLimit   int            `json:"max_limit"`
	Dates      []dateSlotData `json:"dates"`
}

func (d *availableSlotsData) toDomain() (*domain.AvailabilityPayload, error) {
	begin, err := time.Parse(domain.DateFormat, d.DateBegin)
	if err != nil {
		return nil, fmt.Errorf("invalid date_begin %q: %v", d.DateBegin, err)
	}
	end, err := time.Parse(domain.DateFormat, d.DateEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid date_end %q: %v", d.DateEnd, err)
	}

	payload := &domain.AvailabilityPayload{
		EventID:   d.PrevisitID,
		DateBegin: begin,
		DateEnd:   end,
		TimeFirst: types.TimeString(d.TimeFirst),
		TimeLast:  types.TimeString(d.TimeLast),
		TimeUnit:  d.TimeUnit,
		MaxLimit:  d.MaxLimit,
		Dates:     make([]domain.DateSlot, 0, len(d.Dates)),
	}

	for _, ds := range d.Dates {
		dt, err := time.Parse(domain.DateFormat, ds.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid slot date %q: %v", ds.Date, err)
		}

		times := make([]domain.TimeSlot, 0, len(ds.Times))
		for _, ts := range ds.Times {
			times = append(times, domain.TimeSlot{
				Time:      types.TimeString(ts.Time),
				Available: ts.Available,
			})
		}

		payload.Dates = append(payload.Dates, domain.DateSlot{Date: dt, Times: times})
	}

	return payload, nil
}

// CreateReservationRequest запрос на создание записи на осмотр
type CreateReservationRequest struct {
	DonghoID        int64   `json:"dongho_id"`
	ReservationDate string  `json:"reservation_date"`
	ReservationTime string  `json:"reservation_time"`
	WriterName      string  `json:"writer_name"`
	WriterPhone     string  `json:"writer_phone"`
	Memo            *string `json:"memo,omitempty"`
}

// reservationResultData ответ на создание записи
type reservationResultData struct {
	ID int64 `json:"id"`
}
