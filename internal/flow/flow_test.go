package flow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPIError имитирует APIError интеграционного клиента
type fakeAPIError struct {
	code    int
	message string
}

func (e *fakeAPIError) Error() string {
	return fmt.Sprintf("customer api: code=%d message=%s", e.code, e.message)
}

func (e *fakeAPIError) UserMessage() string { return e.message }

func TestFlow_SuccessExposesReservationID(t *testing.T) {
	f := New()
	calls := 0

	id, err := f.Submit(context.Background(), func(context.Context) (int64, error) {
		calls++
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateSucceeded, f.State())
	assert.Equal(t, int64(42), f.ReservationID())
}

func TestFlow_ServerMessageExposedVerbatim(t *testing.T) {
	f := New()
	calls := 0

	// Сервер ответил envelope с code=1 и сообщением "마감"
	_, err := f.Submit(context.Background(), func(context.Context) (int64, error) {
		calls++
		return 0, &fakeAPIError{code: 1, message: "마감"}
	})

	require.Error(t, err)
	assert.Equal(t, StateFailed, f.State())
	assert.Equal(t, "마감", f.FailureMessage())

	// Retry возвращает в Idle и сам по себе ничего не отправляет
	require.NoError(t, f.Retry())
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, 1, calls)
}

func TestFlow_TransportFailureGetsGenericMessage(t *testing.T) {
	f := New()

	_, err := f.Submit(context.Background(), func(context.Context) (int64, error) {
		return 0, errors.New("dial tcp: connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, StateFailed, f.State())
	assert.Equal(t, msgNetworkFailure, f.FailureMessage())
}

func TestFlow_NoResubmitWithoutRetry(t *testing.T) {
	f := New()
	calls := 0
	fail := func(context.Context) (int64, error) {
		calls++
		return 0, errors.New("boom")
	}

	_, _ = f.Submit(context.Background(), fail)
	require.Equal(t, 1, calls)

	// Повторный Submit из Failed отклоняется без сетевого вызова
	_, err := f.Submit(context.Background(), fail)
	assert.ErrorIs(t, err, ErrRetryRequired)
	assert.Equal(t, 1, calls)

	require.NoError(t, f.Retry())
	_, _ = f.Submit(context.Background(), fail)
	assert.Equal(t, 2, calls)
}

func TestFlow_AtMostOnceWhileSubmitting(t *testing.T) {
	f := New()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_, _ = f.Submit(context.Background(), func(context.Context) (int64, error) {
			close(started)
			<-release
			return 7, nil
		})
		close(done)
	}()

	<-started
	// Пока первый запрос в полете, второй Submit отклоняется сразу
	_, err := f.Submit(context.Background(), func(context.Context) (int64, error) {
		t.Fatal("duplicate submit must not be executed")
		return 0, nil
	})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	<-done
	assert.Equal(t, StateSucceeded, f.State())
}

func TestFlow_SubmitAfterSuccessRejected(t *testing.T) {
	f := New()

	_, err := f.Submit(context.Background(), func(context.Context) (int64, error) { return 1, nil })
	require.NoError(t, err)

	_, err = f.Submit(context.Background(), func(context.Context) (int64, error) { return 2, nil })
	assert.ErrorIs(t, err, ErrAlreadySucceeded)

	assert.ErrorIs(t, f.Retry(), ErrNotFailed)

	f.Reset()
	assert.Equal(t, StateIdle, f.State())
	assert.Equal(t, int64(0), f.ReservationID())
}
