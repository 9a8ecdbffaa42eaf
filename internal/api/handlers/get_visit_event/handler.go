package get_visit_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
)

const (
	msgEventNotFound    = "방문 예약 정보를 찾을 수 없습니다."
	msgEventExpired     = "방문 예약 기간이 종료되었습니다."
	msgInvalidProjectID = "올바르지 않은 프로젝트 ID입니다."
)

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

// Handle GET /api/v1/visit/{uuid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	event, err := h.eventsService.GetVisitEvent(r.Context(), uuid)
	if err != nil {
		h.respondError(w, uuid, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(event))
}

// HandleForProject GET /api/v1/visit/project/{projectId}/{uuid}
func (h *Handler) HandleForProject(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uuid := vars["uuid"]

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil || projectID <= 0 {
		h.logger.Warn("GET /visit/project - Invalid project id: %s", vars["projectId"])
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	event, err := h.eventsService.GetVisitEventForProject(r.Context(), projectID, uuid)
	if err != nil {
		h.respondError(w, uuid, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(event))
}

func (h *Handler) respondError(w http.ResponseWriter, uuid string, err error) {
	switch {
	case errors.Is(err, events.ErrEventNotFound):
		h.logger.Warn("GET /visit - Event not found: uuid=%s", uuid)
		handlers.RespondNotFound(w, msgEventNotFound)

	case errors.Is(err, events.ErrEventExpired):
		h.logger.Warn("GET /visit - Event expired: uuid=%s", uuid)
		handlers.RespondGone(w, msgEventExpired)

	default:
		h.logger.Error("GET /visit - Failed to get event: uuid=%s, error=%v", uuid, err)
		handlers.RespondInternalError(w)
	}
}
