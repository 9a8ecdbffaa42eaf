package previsitapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil, nopLogger{})
}

func TestClient_GetEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customer/previsit/abc-123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": {
				"id": 7,
				"uuid": "abc-123",
				"project_id": 42,
				"name": "래미안 원베일리 사전점검",
				"date_begin": "2024-12-01",
				"date_end": "2024-12-15",
				"max_limit": 4,
				"time_first": "09:00",
				"time_last": "17:00",
				"time_unit": 30
			}
		}`))
	})

	event, err := client.GetEvent(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, int64(7), event.ID)
	assert.Equal(t, "abc-123", event.UUID)
	assert.Equal(t, int64(42), event.ProjectID)
	require.NotNil(t, event.MaxLimit)
	assert.Equal(t, 4, *event.MaxLimit)
	assert.Equal(t, "09:00", event.TimeFirst.String())
	assert.Equal(t, 30, event.TimeUnit)
}

func TestClient_GetAvailableSlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/previsit/abc-123/available-slots", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 0,
			"data": {
				"previsit_id": 7,
				"date_begin": "2024-12-01",
				"date_end": "2024-12-02",
				"time_first": "09:00",
				"time_last": "10:00",
				"time_unit": 30,
				"max_limit": 4,
				"dates": [
					{
						"date": "2024-12-01",
						"times": [
							{"time": "09:00", "available": 0},
							{"time": "09:30", "available": 2}
						]
					}
				]
			}
		}`))
	})

	payload, err := client.GetAvailableSlots(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, int64(7), payload.EventID)
	assert.Equal(t, 4, payload.MaxLimit)
	require.Len(t, payload.Dates, 1)
	require.Len(t, payload.Dates[0].Times, 2)
	assert.False(t, payload.Dates[0].Times[0].IsAvailable())
	assert.True(t, payload.Dates[0].Times[1].IsAvailable())
}

func TestClient_CreateReservation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customer/previsit/abc-123/reservations", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": 0, "data": {"id": 555}}`))
	})

	id, err := client.CreateReservation(context.Background(), "abc-123", &CreateReservationRequest{
		DonghoID:        101,
		ReservationDate: "2024-12-01",
		ReservationTime: "09:30",
		WriterName:      "김민수",
		WriterPhone:     "010-1234-5678",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(555), id)
}

func TestClient_CreateReservation_BusinessError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": 1, "message": "마감"}`))
	})

	_, err := client.CreateReservation(context.Background(), "abc-123", &CreateReservationRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 1, apiErr.Code)
	assert.Equal(t, "마감", apiErr.UserMessage())
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestClient_GetEvent_InvalidEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.GetEvent(context.Background(), "abc-123")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
