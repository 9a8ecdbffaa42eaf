package move_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/service/movesession"
	"github.com/m04kA/APT-ReservationService/internal/session"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

const (
	msgInvalidRequestBody = "올바르지 않은 요청입니다."
	msgSessionRequired    = "세션이 만료되었습니다. 다시 로그인해주세요."
	msgSlotsNotLoaded     = "예약 가능 시간을 먼저 조회해주세요."
	msgDateUnavailable    = "선택하신 날짜는 예약이 불가능합니다."
	msgTimeUnavailable    = "선택하신 시간은 예약이 불가능합니다."
	msgLineUnavailable    = "선택하신 라인은 이용할 수 없습니다."
	msgNoDateChosen       = "날짜를 먼저 선택해주세요."
	msgNoTimeChosen       = "시간을 먼저 선택해주세요."
	msgAlreadyConfirmed   = "이미 예약 신청이 완료되었습니다."
)

type Handler struct {
	sessionService SessionService
	logger         Logger
}

func NewHandler(sessionService SessionService, logger Logger) *Handler {
	return &Handler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// HandleState GET /api/v1/move/selection
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	h.withMachine(w, r, "GET /move/selection", func(sess *session.Session, machine *selection.Machine) error {
		return nil
	})
}

// HandleDate POST /api/v1/move/selection/date
func (h *Handler) HandleDate(w http.ResponseWriter, r *http.Request) {
	var req ChooseDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.withMachine(w, r, "POST /move/selection/date", func(sess *session.Session, machine *selection.Machine) error {
		return machine.ChooseDate(date)
	})
}

// HandleTime POST /api/v1/move/selection/time
func (h *Handler) HandleTime(w http.ResponseWriter, r *http.Request) {
	var req ChooseTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.withMachine(w, r, "POST /move/selection/time", func(sess *session.Session, machine *selection.Machine) error {
		return machine.ChooseTime(slotTime)
	})
}

// HandleLine POST /api/v1/move/selection/line
func (h *Handler) HandleLine(w http.ResponseWriter, r *http.Request) {
	var req ChooseLineRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Line == "" {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.withMachine(w, r, "POST /move/selection/line", func(sess *session.Session, machine *selection.Machine) error {
		return machine.ChooseLine(req.Line)
	})
}

// HandleClear DELETE /api/v1/move/selection
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.withMachine(w, r, "DELETE /move/selection", func(sess *session.Session, machine *selection.Machine) error {
		machine.Cancel()
		sess.Flow.Reset()
		return nil
	})
}

// withMachine выполняет операцию над автоматом под Lock сессии
// и отвечает актуальным состоянием выбора
func (h *Handler) withMachine(w http.ResponseWriter, r *http.Request, op string, fn func(sess *session.Session, machine *selection.Machine) error) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	machine, err := h.sessionService.Machine(sess)
	if err != nil {
		switch {
		case errors.Is(err, movesession.ErrNotAuthorized):
			h.logger.Warn("%s - Not authorized: session=%s", op, sess.ID)
			handlers.RespondUnauthorized(w, msgSessionRequired)

		case errors.Is(err, movesession.ErrSlotsNotLoaded):
			h.logger.Warn("%s - Slots not loaded: session=%s", op, sess.ID)
			handlers.RespondConflict(w, msgSlotsNotLoaded)

		default:
			h.logger.Error("%s - Failed: session=%s, error=%v", op, sess.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if err := fn(sess, machine); err != nil {
		h.respondSelectionError(w, op, sess.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stateResponse(sess, machine))
}

func (h *Handler) respondSelectionError(w http.ResponseWriter, op, sessionID string, err error) {
	h.logger.Warn("%s - Selection rejected: session=%s, error=%v", op, sessionID, err)

	switch {
	case errors.Is(err, selection.ErrDateUnavailable):
		handlers.RespondConflict(w, msgDateUnavailable)
	case errors.Is(err, selection.ErrTimeUnavailable):
		handlers.RespondConflict(w, msgTimeUnavailable)
	case errors.Is(err, selection.ErrLineUnavailable):
		handlers.RespondConflict(w, msgLineUnavailable)
	case errors.Is(err, selection.ErrNoDateChosen):
		handlers.RespondConflict(w, msgNoDateChosen)
	case errors.Is(err, selection.ErrNoTimeChosen):
		handlers.RespondConflict(w, msgNoTimeChosen)
	case errors.Is(err, selection.ErrAlreadyConfirmed):
		handlers.RespondConflict(w, msgAlreadyConfirmed)
	default:
		handlers.RespondInternalError(w)
	}
}
