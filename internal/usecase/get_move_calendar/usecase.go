package get_move_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/calendar"
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/service/movesession"
)

const (
	minYear = 2000
	maxYear = 2100
)

// UseCase use case построения календаря заезда
// Работает поверх слотов, закэшированных в сессии: незавершенный выбор
// при листании месяцев не сбрасывается
type UseCase struct {
	sessionService SessionService
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionService SessionService, logger Logger) *UseCase {
	return &UseCase{
		sessionService: sessionService,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case построения календаря
// Вызывается под Lock сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Year < minYear || req.Year > maxYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	sess := req.Session

	// 2. Слоты загружаются один раз за сессию, дальше берутся из нее
	// Принудительное обновление делает отдельная операция получения слотов
	if sess.Payload == nil {
		if err := uc.sessionService.RefreshSlots(ctx, sess); err != nil {
			if errors.Is(err, movesession.ErrNotAuthorized) {
				return nil, ErrNotAuthorized
			}
			uc.logger.Error("GetMoveCalendar: failed to refresh slots for session=%s: %v", sess.ID, err)
			return nil, fmt.Errorf("%w: failed to load available slots: %v", ErrInternal, err)
		}
	}

	// 3. Строим сетку месяца с отметкой выбранной даты
	now := uc.timeProvider.Now()
	resolver := availability.NewResolver(sess.Payload, now)

	var selected *time.Time
	if sess.Machine != nil && sess.Machine.State() != selection.StateEmpty {
		d := sess.Machine.Date()
		selected = &d
	}

	cells := calendar.Generate(req.Year, req.Month, resolver, now, selected)

	return &Response{
		Year:      req.Year,
		Month:     req.Month,
		DateBegin: sess.Payload.DateBegin,
		DateEnd:   sess.Payload.DateEnd,
		Cells:     cells,
	}, nil
}
