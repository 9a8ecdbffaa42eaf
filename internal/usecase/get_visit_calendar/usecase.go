package get_visit_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/calendar"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
)

// UseCase use case построения календаря осмотра
type UseCase struct {
	eventsService EventsService
	slotsClient   SlotsClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(eventsService EventsService, slotsClient SlotsClient, logger Logger) *UseCase {
	return &UseCase{
		eventsService: eventsService,
		slotsClient:   slotsClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetVisitCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что событие существует и еще идет
	_, err := uc.eventsService.GetVisitEvent(ctx, req.EventUUID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			return nil, ErrEventNotFound
		case errors.Is(err, events.ErrEventExpired):
			return nil, ErrEventExpired
		default:
			uc.logger.Error("GetVisitCalendar: failed to get event uuid=%s: %v", req.EventUUID, err)
			return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}
	}

	// 3. Загружаем слоты: доступность дат в календаре идет только из них
	payload, err := uc.slotsClient.GetAvailableSlots(ctx, req.EventUUID)
	if err != nil {
		uc.logger.Error("GetVisitCalendar: failed to get slots uuid=%s: %v", req.EventUUID, err)
		return nil, fmt.Errorf("%w: failed to get available slots: %v", ErrInternal, err)
	}

	// 4. Строим сетку месяца
	now := uc.timeProvider.Now()
	resolver := availability.NewResolver(payload, now)
	cells := calendar.Generate(req.Year, req.Month, resolver, now, req.SelectedDate)

	return &Response{
		Year:      req.Year,
		Month:     req.Month,
		DateBegin: payload.DateBegin,
		DateEnd:   payload.DateEnd,
		Cells:     cells,
	}, nil
}
