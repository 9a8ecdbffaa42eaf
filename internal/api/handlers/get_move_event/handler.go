package get_move_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
)

const (
	msgEventNotFound = "입주 예약 정보를 찾을 수 없습니다."
	msgEventExpired  = "입주 예약 기간이 종료되었습니다."
)

// EventResponse HTTP response model
type EventResponse struct {
	ID          int64  `json:"id"`
	UUID        string `json:"uuid"`
	ProjectUUID string `json:"project_uuid"`
	DateBegin   string `json:"date_begin"`
	DateEnd     string `json:"date_end"`
	TimeFirst   string `json:"time_first"`
	TimeLast    string `json:"time_last"`
	TimeUnit    int    `json:"time_unit"`
	Status      string `json:"status"`
}

type Handler struct {
	eventsService EventsService
	logger        Logger
}

func NewHandler(eventsService EventsService, logger Logger) *Handler {
	return &Handler{
		eventsService: eventsService,
		logger:        logger,
	}
}

// Handle GET /api/v1/move/{uuid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	event, err := h.eventsService.GetMoveEvent(r.Context(), uuid)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("GET /move - Event not found: uuid=%s", uuid)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrEventExpired):
			h.logger.Warn("GET /move - Event expired: uuid=%s", uuid)
			handlers.RespondGone(w, msgEventExpired)

		default:
			h.logger.Error("GET /move - Failed: uuid=%s, error=%v", uuid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &EventResponse{
		ID:          event.ID,
		UUID:        event.UUID,
		ProjectUUID: event.ProjectUUID,
		DateBegin:   event.DateBegin.Format(domain.DateFormat),
		DateEnd:     event.DateEnd.Format(domain.DateFormat),
		TimeFirst:   event.TimeFirst.String(),
		TimeLast:    event.TimeLast.String(),
		TimeUnit:    event.TimeUnit,
		Status:      event.Status,
	})
}
