package create_visit_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/integrations/previsitapi"
	createVisitReservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_visit_reservation"
)

const (
	msgInvalidRequestBody = "올바르지 않은 요청입니다."
	msgEventNotFound      = "방문 예약 정보를 찾을 수 없습니다."
	msgEventExpired       = "방문 예약 기간이 종료되었습니다."
	msgSlotNotAvailable   = "선택하신 시간은 예약이 마감되었습니다. 다른 시간을 선택해주세요."
	msgValidationFailed   = "입력 내용을 확인해주세요."
)

type Handler struct {
	useCase CreateVisitReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateVisitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visit/{uuid}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visit/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(uuid))
	if err != nil {
		var vErr *createVisitReservation.ValidationError
		var apiErr *previsitapi.APIError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /visit/reservations - Validation failed: uuid=%s, error=%v", uuid, err)
			h.respondValidationError(w, vErr)

		case errors.As(err, &apiErr):
			// Текст сервера записи (например "마감") уходит пользователю как есть
			h.logger.Warn("POST /visit/reservations - Rejected by upstream: uuid=%s, error=%v", uuid, err)
			handlers.RespondConflict(w, apiErr.UserMessage())

		case errors.Is(err, createVisitReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /visit/reservations - Slot not available: uuid=%s date=%s time=%s",
				uuid, req.ReservationDate, req.ReservationTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createVisitReservation.ErrEventNotFound):
			h.logger.Warn("POST /visit/reservations - Event not found: uuid=%s", uuid)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, createVisitReservation.ErrEventExpired):
			h.logger.Warn("POST /visit/reservations - Event expired: uuid=%s", uuid)
			handlers.RespondGone(w, msgEventExpired)

		case errors.Is(err, createVisitReservation.ErrInvalidInput):
			h.logger.Warn("POST /visit/reservations - Invalid input: uuid=%s, error=%v", uuid, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /visit/reservations - Failed: uuid=%s, error=%v", uuid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /visit/reservations - Reservation created: id=%d uuid=%s", result.ID, uuid)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondValidationError(w http.ResponseWriter, vErr *createVisitReservation.ValidationError) {
	fields := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields[f.Field] = f.Message
	}
	handlers.RespondJSON(w, http.StatusBadRequest, handlers.ValidationErrorResponse{
		Error:  msgValidationFailed,
		Fields: fields,
	})
}
