package create_move_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/flow"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// sessionMachine отдает автомат сессии так же, как movesession.Service
type sessionMachine struct{}

func (sessionMachine) Machine(sess *session.Session) (*selection.Machine, error) {
	return sess.Machine, nil
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func movePayload() *domain.AvailabilityPayload {
	return &domain.AvailabilityPayload{
		EventID:   3,
		DateBegin: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		TimeFirst: "09:00",
		TimeLast:  "17:00",
		TimeUnit:  30,
		Dates: []domain.DateSlot{
			{
				Date: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
				Times: []domain.TimeSlot{
					{Time: "09:00", AvailableLines: []string{"A", "B"}},
				},
			},
		},
	}
}

// newTestSession собирает авторизованную сессию с автоматом и клиентом,
// смотрящим в тестовый сервер
func newTestSession(t *testing.T, handler http.HandlerFunc) *session.Session {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	factory := moveapi.NewFactory(srv.URL, 5*time.Second, nil, nopLogger{})
	clock := fixedClock{now: time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)}

	store := session.NewStore(30*time.Minute, clock, nil)
	sess, err := store.Create("uuid-1", factory.NewClient())
	require.NoError(t, err)

	sess.Unit = &domain.MoveUnit{DonghoID: 101, Dong: "101", Ho: "1203"}
	sess.Payload = movePayload()
	sess.Machine = selection.NewMachine(availability.NewResolver(sess.Payload, clock.now))
	return sess
}

func chooseSlot(t *testing.T, sess *session.Session, line string) {
	t.Helper()
	require.NoError(t, sess.Machine.ChooseDate(time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sess.Machine.ChooseTime("09:00"))
	require.NoError(t, sess.Machine.ChooseLine(line))
}

func TestExecute_Success(t *testing.T) {
	var body struct {
		ReservationEvline string `json:"reservation_evline"`
		ReservationDate   string `json:"reservation_date"`
		ReservationTime   string `json:"reservation_time"`
	}

	sess := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/move/uuid-1/reservations", r.URL.Path)
		require.NoError(t, jsonDecode(r, &body))
		_, _ = w.Write([]byte(`{"code": 0, "data": {"id": 77}}`))
	})
	chooseSlot(t, sess, "B")

	uc := NewUseCase(sessionMachine{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Session: sess})
	require.NoError(t, err)

	assert.Equal(t, int64(77), resp.ID)
	assert.Equal(t, "B", resp.Line)
	assert.Equal(t, "B", body.ReservationEvline)
	assert.Equal(t, "2024-12-05", body.ReservationDate)
	assert.Equal(t, "09:00", body.ReservationTime)

	assert.Equal(t, flow.StateSucceeded, sess.Flow.State())
	assert.Equal(t, selection.StateConfirmed, sess.Machine.State())
}

func TestExecute_LineNotChosen(t *testing.T) {
	sess := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("submit must not be called")
	})
	require.NoError(t, sess.Machine.ChooseDate(time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sess.Machine.ChooseTime("09:00"))

	uc := NewUseCase(sessionMachine{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Session: sess})
	assert.ErrorIs(t, err, ErrLineRequired)
}

func TestExecute_SelectionIncomplete(t *testing.T) {
	sess := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("submit must not be called")
	})

	uc := NewUseCase(sessionMachine{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Session: sess})
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestExecute_FailureThenExplicitRetry(t *testing.T) {
	var calls atomic.Int32

	sess := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"code": 1, "message": "마감"}`))
			return
		}
		_, _ = w.Write([]byte(`{"code": 0, "data": {"id": 78}}`))
	})
	chooseSlot(t, sess, "A")

	uc := NewUseCase(sessionMachine{}, nopLogger{})

	// Первая отправка: сервер отвечает бизнес-ошибкой
	_, err := uc.Execute(context.Background(), &Request{Session: sess})
	require.Error(t, err)

	var apiErr *moveapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "마감", apiErr.UserMessage())

	assert.Equal(t, flow.StateFailed, sess.Flow.State())
	assert.Equal(t, "마감", sess.Flow.FailureMessage())
	assert.Equal(t, int32(1), calls.Load())

	// Повторный запрос пользователя: прежний выбор, новая отправка
	resp, err := uc.Execute(context.Background(), &Request{Session: sess})
	require.NoError(t, err)
	assert.Equal(t, int64(78), resp.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestExecute_SecondSubmitAfterSuccess(t *testing.T) {
	var calls atomic.Int32

	sess := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"code": 0, "data": {"id": 77}}`))
	})
	chooseSlot(t, sess, "A")

	uc := NewUseCase(sessionMachine{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Session: sess})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{Session: sess})
	assert.ErrorIs(t, err, ErrAlreadyReserved)
	assert.Equal(t, int32(1), calls.Load())
}

func jsonDecode(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
