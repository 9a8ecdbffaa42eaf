package get_donghos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/service/units"
)

const (
	msgInvalidProjectID = "올바르지 않은 프로젝트 ID입니다."
	msgDongRequired     = "동을 선택해주세요."
	msgProjectNotFound  = "프로젝트를 찾을 수 없습니다."
)

// DonghoResponse одна квартира в ответе
type DonghoResponse struct {
	ID       int64   `json:"id"`
	Dong     string  `json:"dong"`
	Ho       string  `json:"ho"`
	UnitType *string `json:"unit_type,omitempty"`
}

// DonghosResponse HTTP response model
type DonghosResponse struct {
	Donghos []DonghoResponse `json:"donghos"`
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

// Handle GET /api/v1/projects/{projectId}/donghos?dong=101
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(mux.Vars(r)["projectId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	dong := r.URL.Query().Get("dong")
	if dong == "" {
		handlers.RespondBadRequest(w, msgDongRequired)
		return
	}

	donghos, err := h.unitsService.GetDonghos(r.Context(), projectID, dong)
	if err != nil {
		switch {
		case errors.Is(err, units.ErrProjectNotFound):
			h.logger.Warn("GET /donghos - Project not found: project_id=%d", projectID)
			handlers.RespondNotFound(w, msgProjectNotFound)

		case errors.Is(err, units.ErrInvalidInput):
			h.logger.Warn("GET /donghos - Invalid input: project_id=%d dong=%s", projectID, dong)
			handlers.RespondBadRequest(w, msgInvalidProjectID)

		default:
			h.logger.Error("GET /donghos - Failed: project_id=%d dong=%s, error=%v", projectID, dong, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(donghos))
}

// FromDomain конвертирует список квартир в HTTP response
func FromDomain(donghos []domain.Dongho) *DonghosResponse {
	out := &DonghosResponse{Donghos: make([]DonghoResponse, 0, len(donghos))}
	for _, d := range donghos {
		out.Donghos = append(out.Donghos, DonghoResponse{
			ID:       d.ID,
			Dong:     d.Dong,
			Ho:       d.Ho,
			UnitType: d.UnitType,
		})
	}
	return out
}
