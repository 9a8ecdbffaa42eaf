package customerapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_GetDongs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/project/42/dongs", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"code": 0, "data": {"list": [{"dong": "101"}, {"dong": "102"}]}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NewTokenStore("access-1", "refresh-1"), nil, nopLogger{})

	dongs, err := client.GetDongs(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102"}, dongs)
}

func TestClient_RefreshOn401(t *testing.T) {
	var refreshCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			refreshCalls.Add(1)
			_, _ = w.Write([]byte(`{"code": 0, "data": {"access_token": "access-2", "refresh_token": "refresh-2"}}`))
		case "/customer/project/42/dongs":
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"code": 0, "data": {"list": [{"dong": "101"}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	tokens := NewTokenStore("expired", "refresh-1")
	client := NewClient(srv.URL, 5*time.Second, tokens, nil, nopLogger{})

	dongs, err := client.GetDongs(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, dongs)

	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "access-2", tokens.AccessToken())
	assert.Equal(t, "refresh-2", tokens.RefreshToken())
}

func TestClient_RefreshFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NewTokenStore("expired", "bad"), nil, nopLogger{})

	_, err := client.GetDongs(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_SingleRetryOnly(t *testing.T) {
	var dongsCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			_, _ = w.Write([]byte(`{"code": 0, "data": {"access_token": "access-2"}}`))
		case "/customer/project/42/dongs":
			dongsCalls.Add(1)
			// Отклоняем и повторный запрос тоже
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, NewTokenStore("expired", "refresh-1"), nil, nopLogger{})

	_, err := client.GetDongs(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(2), dongsCalls.Load())
}

func TestTokenStore_Update_KeepsRefreshWhenEmpty(t *testing.T) {
	tokens := NewTokenStore("access-1", "refresh-1")

	tokens.Update("access-2", "")
	assert.Equal(t, "access-2", tokens.AccessToken())
	assert.Equal(t, "refresh-1", tokens.RefreshToken())
}
