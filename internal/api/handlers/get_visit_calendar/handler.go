package get_visit_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	getVisitCalendar "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_calendar"
)

const (
	msgEventNotFound  = "방문 예약 정보를 찾을 수 없습니다."
	msgEventExpired   = "방문 예약 기간이 종료되었습니다."
	msgInvalidRequest = "올바르지 않은 요청입니다."
)

type Handler struct {
	useCase GetVisitCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetVisitCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/visit/{uuid}/calendar?year=2024&month=12&selected=2024-12-05
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]
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

	var selected *time.Time
	if raw := query.Get("selected"); raw != "" {
		d, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		selected = &d
	}

	result, err := h.useCase.Execute(r.Context(), &getVisitCalendar.Request{
		EventUUID:    uuid,
		Year:         year,
		Month:        time.Month(month),
		SelectedDate: selected,
	})
	if err != nil {
		switch {
		case errors.Is(err, getVisitCalendar.ErrEventNotFound):
			h.logger.Warn("GET /visit/calendar - Event not found: uuid=%s", uuid)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, getVisitCalendar.ErrEventExpired):
			h.logger.Warn("GET /visit/calendar - Event expired: uuid=%s", uuid)
			handlers.RespondGone(w, msgEventExpired)

		case errors.Is(err, getVisitCalendar.ErrInvalidInput):
			h.logger.Warn("GET /visit/calendar - Invalid input: uuid=%s, error=%v", uuid, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /visit/calendar - Failed: uuid=%s, error=%v", uuid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
