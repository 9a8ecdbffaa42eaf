package get_my_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/service/reservations"
)

const msgSessionRequired = "세션이 만료되었습니다. 다시 로그인해주세요."

type Handler struct {
	reservationsService ReservationsService
	logger              Logger
}

func NewHandler(reservationsService ReservationsService, logger Logger) *Handler {
	return &Handler{
		reservationsService: reservationsService,
		logger:              logger,
	}
}

// Handle GET /api/v1/move/my-reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	sess.Lock()
	my, err := h.reservationsService.MyReservation(r.Context(), sess)
	sess.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrNotAuthorized):
			h.logger.Warn("GET /move/my-reservation - Not authorized: session=%s", sess.ID)
			handlers.RespondUnauthorized(w, msgSessionRequired)

		default:
			h.logger.Error("GET /move/my-reservation - Failed: session=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(my))
}
