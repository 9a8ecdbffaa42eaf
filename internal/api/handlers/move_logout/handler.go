package move_logout

import (
	"net/http"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
)

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

// Handle POST /api/v1/move/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	h.sessionService.Logout(r.Context(), sess)
	middleware.ClearSessionCookie(w)

	h.logger.Info("POST /move/logout - Session closed: session=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
