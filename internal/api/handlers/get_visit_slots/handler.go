package get_visit_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	getVisitSlots "github.com/m04kA/APT-ReservationService/internal/usecase/get_visit_slots"
)

const (
	msgEventNotFound = "방문 예약 정보를 찾을 수 없습니다."
	msgEventExpired  = "방문 예약 기간이 종료되었습니다."
)

type Handler struct {
	useCase GetVisitSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetVisitSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/visit/{uuid}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	result, err := h.useCase.Execute(r.Context(), &getVisitSlots.Request{EventUUID: uuid})
	if err != nil {
		switch {
		case errors.Is(err, getVisitSlots.ErrEventNotFound):
			h.logger.Warn("GET /visit/slots - Event not found: uuid=%s", uuid)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, getVisitSlots.ErrEventExpired):
			h.logger.Warn("GET /visit/slots - Event expired: uuid=%s", uuid)
			handlers.RespondGone(w, msgEventExpired)

		default:
			h.logger.Error("GET /visit/slots - Failed: uuid=%s, error=%v", uuid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
