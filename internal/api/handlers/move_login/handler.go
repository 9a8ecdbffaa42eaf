package move_login

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/APT-ReservationService/internal/api/handlers"
	"github.com/m04kA/APT-ReservationService/internal/api/middleware"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/service/movesession"
)

const (
	msgInvalidRequestBody = "올바르지 않은 요청입니다."
	msgLoginFailed        = "동호수 또는 비밀번호가 올바르지 않습니다."
	msgEventNotFound      = "입주 예약 정보를 찾을 수 없습니다."
)

// LoginRequest HTTP request model
type LoginRequest struct {
	DonghoID int64  `json:"dongho_id"`
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Dong            string  `json:"dong"`
	Ho              string  `json:"ho"`
	ContractorName  string  `json:"contractor_name"`
	ContractorPhone string  `json:"contractor_phone"`
	UnitType        *string `json:"unit_type,omitempty"`
}

type Handler struct {
	sessionService  SessionService
	cookieMaxAgeSec int
	logger          Logger
}

func NewHandler(sessionService SessionService, cookieMaxAgeSec int, logger Logger) *Handler {
	return &Handler{
		sessionService:  sessionService,
		cookieMaxAgeSec: cookieMaxAgeSec,
		logger:          logger,
	}
}

// Handle POST /api/v1/move/{uuid}/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /move/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.DonghoID <= 0 || req.Password == "" {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sess, err := h.sessionService.Login(r.Context(), uuid, &moveapi.LoginRequest{
		DonghoID: req.DonghoID,
		UserID:   req.UserID,
		Password: req.Password,
	})
	if err != nil {
		var apiErr *moveapi.APIError

		switch {
		case errors.As(err, &apiErr):
			h.logger.Warn("POST /move/login - Rejected by upstream: uuid=%s, error=%v", uuid, err)
			handlers.RespondUnauthorized(w, apiErr.UserMessage())

		case errors.Is(err, movesession.ErrLoginFailed):
			h.logger.Warn("POST /move/login - Login failed: uuid=%s dongho=%d", uuid, req.DonghoID)
			handlers.RespondUnauthorized(w, msgLoginFailed)

		case errors.Is(err, movesession.ErrEventNotFound):
			h.logger.Warn("POST /move/login - Event not found: uuid=%s", uuid)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("POST /move/login - Failed: uuid=%s, error=%v", uuid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	middleware.SetSessionCookie(w, sess.ID, h.cookieMaxAgeSec)

	h.logger.Info("POST /move/login - Session created: uuid=%s dong=%s ho=%s", uuid, sess.Unit.Dong, sess.Unit.Ho)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		Dong:            sess.Unit.Dong,
		Ho:              sess.Unit.Ho,
		ContractorName:  sess.Unit.ContractorName,
		ContractorPhone: sess.Unit.ContractorPhone,
		UnitType:        sess.Unit.UnitType,
	})
}
