package create_visit_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/previsitapi"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
	"github.com/m04kA/APT-ReservationService/pkg/ptr"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeEventsService struct {
	event *domain.PrevisitEvent
	err   error
}

func (f *fakeEventsService) GetVisitEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error) {
	return f.event, f.err
}

type fakeReservationClient struct {
	payload   *domain.AvailabilityPayload
	createID  int64
	createErr error
	calls     int
}

func (f *fakeReservationClient) GetAvailableSlots(ctx context.Context, uuid string) (*domain.AvailabilityPayload, error) {
	return f.payload, nil
}

func (f *fakeReservationClient) CreateReservation(ctx context.Context, uuid string, req *previsitapi.CreateReservationRequest) (int64, error) {
	f.calls++
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.now
}

func testPayload() *domain.AvailabilityPayload {
	return &domain.AvailabilityPayload{
		EventID:   7,
		DateBegin: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		TimeFirst: "09:00",
		TimeLast:  "17:00",
		TimeUnit:  30,
		MaxLimit:  4,
		Dates: []domain.DateSlot{
			{
				Date: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
				Times: []domain.TimeSlot{
					{Time: "09:00", Available: 0},
					{Time: "09:30", Available: 2},
				},
			},
		},
	}
}

func testEvent() *domain.PrevisitEvent {
	return &domain.PrevisitEvent{
		ID:        7,
		UUID:      "abc-123",
		DateBegin: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		TimeFirst: types.TimeString("09:00"),
		TimeLast:  types.TimeString("17:00"),
		TimeUnit:  30,
	}
}

func validRequest() *Request {
	return &Request{
		EventUUID:   "abc-123",
		DonghoID:    101,
		Date:        "2024-12-05",
		Time:        "09:30",
		WriterName:  "김민수",
		WriterPhone: "010-1234-5678",
	}
}

func newTestUseCase(client *fakeReservationClient) *UseCase {
	uc := NewUseCase(&fakeEventsService{event: testEvent()}, client, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload(), createID: 555}
	uc := newTestUseCase(client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(555), resp.ID)
	assert.Equal(t, "09:30", resp.Time.String())
	assert.Equal(t, 1, client.calls)
}

func TestExecute_ValidationErrors(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload()}
	uc := newTestUseCase(client)

	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{
			name:   "missing name",
			mutate: func(r *Request) { r.WriterName = "" },
			field:  "writer_name",
		},
		{
			name:   "bad phone",
			mutate: func(r *Request) { r.WriterPhone = "02-1234-5678" },
			field:  "writer_phone",
		},
		{
			name:   "bad date format",
			mutate: func(r *Request) { r.Date = "05.12.2024" },
			field:  "reservation_date",
		},
		{
			name:   "negative dongho",
			mutate: func(r *Request) { r.DonghoID = -1 },
			field:  "dongho_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			require.NotEmpty(t, vErr.Fields)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)

			// До создания записи дело не дошло
			assert.Equal(t, 0, client.calls)
		})
	}
}

func TestExecute_PhoneWithoutHyphens(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload(), createID: 1}
	uc := newTestUseCase(client)

	req := validRequest()
	req.WriterPhone = "01012345678"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotFullyBooked(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload()}
	uc := newTestUseCase(client)

	req := validRequest()
	req.Time = "09:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 0, client.calls)
}

func TestExecute_UnknownDate(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload()}
	uc := newTestUseCase(client)

	req := validRequest()
	req.Date = "2024-12-06"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_UpstreamMessagePassedThrough(t *testing.T) {
	client := &fakeReservationClient{
		payload:   testPayload(),
		createErr: &previsitapi.APIError{Code: 1, Message: "마감"},
	}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	var apiErr *previsitapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "마감", apiErr.UserMessage())
}

func TestExecute_EventExpired(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload()}
	uc := NewUseCase(&fakeEventsService{err: events.ErrEventExpired}, client, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEventExpired)
}

func TestExecute_MemoTooLong(t *testing.T) {
	client := &fakeReservationClient{payload: testPayload()}
	uc := newTestUseCase(client)

	long := make([]rune, 501)
	for i := range long {
		long[i] = '가'
	}
	req := validRequest()
	req.Memo = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
