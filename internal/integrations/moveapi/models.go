package moveapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// envelope общий конверт ответов customer API
type envelope struct {
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// moveInfoData событие заезда из customer API
type moveInfoData struct {
	ID          int64  `json:"id"`
	UUID        string `json:"uuid,omitempty"`
	ProjectUUID string `json:"project_uuid"`
	DateBegin   string `json:"date_begin"`
	DateEnd     string `json:"date_end"`
	TimeFirst   string `json:"time_first"`
	TimeLast    string `json:"time_last"`
	TimeUnit    int    `json:"time_unit"`
	Status      string `json:"status,omitempty"`
}

func (d *moveInfoData) toDomain() (*domain.MoveEvent, error) {
	begin, err := time.Parse(domain.DateFormat, d.DateBegin)
	if err != nil {
		return nil, fmt.Errorf("invalid date_begin %q: %v", d.DateBegin, err)
	}
	end, err := time.Parse(domain.DateFormat, d.DateEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid date_end %q: %v", d.DateEnd, err)
	}

	return &domain.MoveEvent{
		ID:          d.ID,
		UUID:        d.UUID,
		ProjectUUID: d.ProjectUUID,
		DateBegin:   begin,
		DateEnd:     end,
		TimeFirst:   types.TimeString(d.TimeFirst),
		TimeLast:    types.TimeString(d.TimeLast),
		TimeUnit:    d.TimeUnit,
		Status:      d.Status,
	}, nil
}

// LoginRequest запрос логина move-потока
type LoginRequest struct {
	DonghoID int64  `json:"dongho_id"`
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// loginData ответ логина: данные подтвержденной квартиры
type loginData struct {
	DonghoID        int64   `json:"dongho_id"`
	Dong            string  `json:"dong"`
	Ho              string  `json:"ho"`
	ContractorName  string  `json:"contractor_name"`
	ContractorPhone string  `json:"contractor_phone"`
	UnitType        *string `json:"unit_type"`
}

func (d *loginData) toDomain() *domain.MoveUnit {
	return &domain.MoveUnit{
		DonghoID:        d.DonghoID,
		Dong:            d.Dong,
		Ho:              d.Ho,
		ContractorName:  d.ContractorName,
		ContractorPhone: d.ContractorPhone,
		UnitType:        d.UnitType,
	}
}

// moveTimeSlotData слот заезда со свободными линиями лифтов
type moveTimeSlotData struct {
	Time           string   `json:"time"`
	AvailableLines []string `json:"available_lines"`
	IsAvailable    bool     `json:"is_available"`
}

// moveDateSlotData слоты одной даты
type moveDateSlotData struct {
	Date  string             `json:"date"`
	Times []moveTimeSlotData `json:"times"`
}

// availableSlotsData ответ о доступных слотах заезда
type availableSlotsData struct {
	MoveID    int64              `json:"move_id"`
	DateBegin string             `json:"date_begin"`
	DateEnd   string             `json:"date_end"`
	TimeFirst string             `json:"time_first"`
	TimeLast  string             `json:"time_last"`
	TimeUnit  int                `json:"time_unit"`
	Dates     []moveDateSlotData `json:"dates"`
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
		EventID:   d.MoveID,
		DateBegin: begin,
		DateEnd:   end,
		TimeFirst: types.TimeString(d.TimeFirst),
		TimeLast:  types.TimeString(d.TimeLast),
		TimeUnit:  d.TimeUnit,
		Dates:     make([]domain.DateSlot, 0, len(d.Dates)),
	}

	for _, ds := range d.Dates {
		dt, err := time.Parse(domain.DateFormat, ds.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid slot date %q: %v", ds.Date, err)
		}

		times := make([]domain.TimeSlot, 0, len(ds.Times))
		for _, ts := range ds.Times {
			lines := ts.AvailableLines
			if lines == nil {
				// Move-слот всегда управляется линиями, даже когда все заняты
				lines = []string{}
			}
			times = append(times, domain.TimeSlot{
				Time:           types.TimeString(ts.Time),
				AvailableLines: lines,
			})
		}

		payload.Dates = append(payload.Dates, domain.DateSlot{Date: dt, Times: times})
	}

	return payload, nil
}

// CreateReservationRequest запрос на создание записи на заезд
type CreateReservationRequest struct {
	ReservationEvline string `json:"reservation_evline"`
	ReservationDate   string `json:"reservation_date"`
	ReservationTime   string `json:"reservation_time"`
}

// reservationResultData ответ на создание записи
type reservationResultData struct {
	ID int64 `json:"id"`
}

// reservationItemData запись на заезд (активная или из истории)
type reservationItemData struct {
	ID                int64   `json:"id"`
	ReservationEvline string  `json:"reservation_evline"`
	ReservationDate   string  `json:"reservation_date"`
	ReservationTime   string  `json:"reservation_time"`
	CreatedAt         string  `json:"created_at"`
	CanceledAt        *string `json:"canceled_at"`
	CanceledReason    *string `json:"canceled_reason"`
	IsCanceled        bool    `json:"is_canceled"`
}

func (d *reservationItemData) toDomain() (*domain.MoveReservation, error) {
	date, err := time.Parse(domain.DateFormat, d.ReservationDate)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation_date %q: %v", d.ReservationDate, err)
	}
	createdAt, err := time.Parse(time.RFC3339, d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %v", d.CreatedAt, err)
	}

	r := &domain.MoveReservation{
		ID:             d.ID,
		EvLine:         d.ReservationEvline,
		Date:           date,
		Time:           types.TimeString(d.ReservationTime),
		CreatedAt:      createdAt,
		CanceledReason: d.CanceledReason,
		IsCanceled:     d.IsCanceled,
	}

	if d.CanceledAt != nil {
		canceledAt, err := time.Parse(time.RFC3339, *d.CanceledAt)
		if err != nil {
			return nil, fmt.Errorf("invalid canceled_at %q: %v", *d.CanceledAt, err)
		}
		r.CanceledAt = &canceledAt
	}

	return r, nil
}

// myReservationData ответ о записях текущей сессии
type myReservationData struct {
	Dong              string                `json:"dong"`
	Ho                string                `json:"ho"`
	ActiveReservation *reservationItemData  `json:"active_reservation"`
	History           []reservationItemData `json:"history"`
}

func (d *myReservationData) toDomain() (*domain.MyReservations, error) {
	out := &domain.MyReservations{
		Dong:    d.Dong,
		Ho:      d.Ho,
		History: make([]domain.MoveReservation, 0, len(d.History)),
	}

	if d.ActiveReservation != nil {
		active, err := d.ActiveReservation.toDomain()
		if err != nil {
			return nil, err
		}
		out.Active = active
	}

	for i := range d.History {
		item, err := d.History[i].toDomain()
		if err != nil {
			return nil, err
		}
		out.History = append(out.History, *item)
	}

	return out, nil
}

// cancelRequest тело запроса отмены записи
type cancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// cancelResultData ответ на отмену записи
type cancelResultData struct {
	ID          int64  `json:"id"`
	CancelledAt string `json:"cancelled_at"`
}

// dongData элемент списка домов
type dongData struct {
	Dong string `json:"dong"`
}

// donghoData элемент списка квартир
type donghoData struct {
	ID       int64   `json:"id"`
	Dong     string  `json:"dong"`
	Ho       string  `json:"ho"`
	UnitType *string `json:"unit_type"`
}

// listData общий контейнер списков customer API
type listData[T any] struct {
	List []T `json:"list"`
}
