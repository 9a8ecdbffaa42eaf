package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

// SessionCookieName имя cookie с идентификатором сессии
const SessionCookieName = "apt_session"

const msgSessionRequired = "세션이 만료되었습니다. 다시 로그인해주세요."

type contextKey struct{}

var sessionKey contextKey

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Get(id string) (*session.Session, error)
}

// Session проверяет cookie сессии и кладет сессию в контекст запроса
// Запросы без живой сессии получают 401
func Session(store SessionStore, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			sess, err := store.Get(cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrSessionNotFound) {
					log.Error("session middleware: failed to get session: %v", err)
				}
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext достает сессию, положенную middleware
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

// SetSessionCookie выставляет cookie сессии
func SetSessionCookie(w http.ResponseWriter, sessionID string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie удаляет cookie сессии
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
