package get_move_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/service/movesession"
)

const msgSessionRequired = "세션이 만료되었습니다. 다시 로그인해주세요."

type Handler struct {
	sessionService SessionService
	logger         Logger
}

func NewHandler(sessionService SessionService, logger Logger) *Handler {
	return &Handler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Handle GET /api/v1/move/slots
// Всегда тянет свежие слоты: открытие экрана выбора начинает выбор заново
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	sess.Lock()
	err := h.sessionService.RefreshSlots(r.Context(), sess)
	payload := sess.Payload
	sess.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, movesession.ErrNotAuthorized):
			h.logger.Warn("GET /move/slots - Not authorized: session=%s", sess.ID)
			handlers.RespondUnauthorized(w, msgSessionRequired)

		default:
			h.logger.Error("GET /move/slots - Failed: session=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(payload))
}
