package get_move_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	getMoveCalendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_move_calendar"
)

const (
	msgInvalidRequest  = "올바르지 않은 요청입니다."
	msgSessionRequired = "세션이 만료되었습니다. 다시 로그인해주세요."
)

type Handler struct {
	useCase GetMoveCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetMoveCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/move/calendar?year=2024&month=12
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}
	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	sess.Lock()
	result, err := h.useCase.Execute(r.Context(), &getMoveCalendar.Request{
		Session: sess,
		Year:    year,
		Month:   time.Month(month),
	})
	sess.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, getMoveCalendar.ErrNotAuthorized):
			h.logger.Warn("GET /move/calendar - Not authorized: session=%s", sess.ID)
			handlers.RespondUnauthorized(w, msgSessionRequired)

		case errors.Is(err, getMoveCalendar.ErrInvalidInput):
			h.logger.Warn("GET /move/calendar - Invalid input: session=%s, error=%v", sess.ID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /move/calendar - Failed: session=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
