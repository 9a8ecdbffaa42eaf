package get_dongs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/service/units"
)

const (
	msgInvalidProjectID = "올바르지 않은 프로젝트 ID입니다."
	msgProjectNotFound  = "프로젝트를 찾을 수 없습니다."
)

// DongsResponse HTTP response model
type DongsResponse struct {
	Dongs []string `json:"dongs"`
}

type Handler struct {
	unitsService UnitsService
	logger       Logger
}

func NewHandler(unitsService UnitsService, logger Logger) *Handler {
	return &Handler{
		unitsService: unitsService,
		logger:       logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/dongs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(mux.Vars(r)["projectId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	dongs, err := h.unitsService.GetDongs(r.Context(), projectID)
	if err != nil {
		switch {
		case errors.Is(err, units.ErrProjectNotFound):
			h.logger.Warn("GET /dongs - Project not found: project_id=%d", projectID)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, units.ErrInvalidInput):
			h.logger.Warn("GET /dongs - Invalid input: project_id=%d", projectID)
			handlers.RespondBadRequest(w, msgInvalidProjectID)

		default:
			h.logger.Error("GET /dongs - Failed: project_id=%d, error=%v", projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DongsResponse{Dongs: dongs})
}
