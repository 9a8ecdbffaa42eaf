package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/APT-ReservationService/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestStore(t *testing.T) (*session.Store, *session.Session) {
	t.Helper()

	store := session.NewStore(30*time.Minute, session.RealTimeProvider{}, nil)
	sess, err := store.Create("6f9619ff-8b86-4d01-b42d-00cf4fc964ff", nil)
	require.NoError(t, err)

	return store, sess
}

func TestSession_NoCookie(t *testing.T) {
	store, _ := newTestStore(t)

	handler := Session(store, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached without a session cookie")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/move/calendar", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_UnknownSession(t *testing.T) {
	store, _ := newTestStore(t)

	handler := Session(store, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be reached with an unknown session id")
	}))

	req := httptest.NewRequest(http.MethodGet, "/move/calendar", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "deadbeef"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_InjectsSessionIntoContext(t *testing.T) {
	store, sess := newTestStore(t)

	var gotID string
	handler := Session(store, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		gotID = fromCtx.ID
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/move/calendar", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess.ID, gotID)
}

func TestSessionCookie_SetAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "abc123", 1800)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, "abc123", cookies[0].Value)
	assert.Equal(t, 1800, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
