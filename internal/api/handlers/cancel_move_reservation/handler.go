package cancel_move_reservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "올바르지 않은 예약 ID입니다."
	msgInvalidRequestBody   = "올바르지 않은 요청입니다."
	msgSessionRequired      = "세션이 만료되었습니다. 다시 로그인해주세요."
	msgReservationNotFound  = "예약 내역을 찾을 수 없습니다."
)

// CancelRequest HTTP request model
// Тело опционально: отмена без причины допустима
type CancelRequest struct {
	Reason *string `json:"reason,omitempty"`
}

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

// Handle DELETE /api/v1/move/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess.Lock()
	err = h.reservationsService.Cancel(r.Context(), sess, reservationID, req.Reason)
	sess.Unlock()

	if err != nil {
		var apiErr *moveapi.APIError

		switch {
		case errors.As(err, &apiErr):
			h.logger.Warn("DELETE /move/reservations - Rejected by upstream: session=%s reservation=%d, error=%v",
				sess.ID, reservationID, err)
			handlers.RespondConflict(w, apiErr.UserMessage())

		case errors.Is(err, reservations.ErrNotAuthorized):
			h.logger.Warn("DELETE /move/reservations - Not authorized: session=%s", sess.ID)
			handlers.RespondUnauthorized(w, msgSessionRequired)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /move/reservations - Not found: session=%s reservation=%d", sess.ID, reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("DELETE /move/reservations - Invalid input: session=%s, error=%v", sess.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("DELETE /move/reservations - Failed: session=%s reservation=%d, error=%v",
				sess.ID, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /move/reservations - Reservation canceled: id=%d session=%s", reservationID, sess.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
