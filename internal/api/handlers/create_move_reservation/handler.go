package create_move_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	createMoveReservation "github.com/m04kA/APT-ReservationService/internal/usecase/create_move_reservation"
)

const (
	msgSessionRequired     = "세션이 만료되었습니다. 다시 로그인해주세요."
	msgSlotsNotLoaded      = "예약 가능 시간을 먼저 조회해주세요."
	msgSelectionIncomplete = "날짜와 시간을 먼저 선택해주세요."
	msgLineRequired        = "라인을 선택해주세요."
	msgSubmitInFlight      = "예약 신청을 처리 중입니다. 잠시만 기다려주세요."
	msgAlreadyReserved     = "이미 예약 신청이 완료되었습니다."
)

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	Line            string `json:"line"`
}

type Handler struct {
	useCase CreateMoveReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateMoveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/move/reservations
// Тело не требуется: дата, время и линия берутся из выбора сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	sess.Lock()
	result, err := h.useCase.Execute(r.Context(), &createMoveReservation.Request{Session: sess})
	sess.Unlock()

	if err != nil {
		var apiErr *moveapi.APIError

		switch {
		case errors.As(err, &apiErr):
			// Текст сервера записи (например "마감") уходит пользователю как есть
			h.logger.Warn("POST /move/reservations - Rejected by upstream: session=%s, error=%v", sess.ID, err)
			handlers.RespondConflict(w, apiErr.UserMessage())

		case errors.Is(err, createMoveReservation.ErrNotAuthorized):
			h.logger.Warn("POST /move/reservations - Not authorized: session=%s", sess.ID)
			handlers.RespondUnauthorized(w, msgSessionRequired)

		case errors.Is(err, createMoveReservation.ErrSlotsNotLoaded):
			h.logger.Warn("POST /move/reservations - Slots not loaded: session=%s", sess.ID)
			handlers.RespondConflict(w, msgSlotsNotLoaded)

		case errors.Is(err, createMoveReservation.ErrSelectionIncomplete):
			h.logger.Warn("POST /move/reservations - Selection incomplete: session=%s", sess.ID)
			handlers.RespondConflict(w, msgSelectionIncomplete)

		case errors.Is(err, createMoveReservation.ErrLineRequired):
			h.logger.Warn("POST /move/reservations - Line not chosen: session=%s", sess.ID)
			handlers.RespondConflict(w, msgLineRequired)

		case errors.Is(err, createMoveReservation.ErrSubmissionInFlight):
			h.logger.Warn("POST /move/reservations - Submission in flight: session=%s", sess.ID)
			handlers.RespondConflict(w, msgSubmitInFlight)

		case errors.Is(err, createMoveReservation.ErrAlreadyReserved):
			h.logger.Warn("POST /move/reservations - Already reserved: session=%s", sess.ID)
			handlers.RespondConflict(w, msgAlreadyReserved)

		default:
			h.logger.Error("POST /move/reservations - Failed: session=%s, error=%v", sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /move/reservations - Reservation created: id=%d session=%s", result.ID, sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, &ReservationResponse{
		ID:              result.ID,
		ReservationDate: result.Date.Format(domain.DateFormat),
		ReservationTime: result.Time.String(),
		Line:            result.Line,
	})
}
