package get_visit_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
)

// UseCase use case получения доступных слотов осмотра
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

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.EventUUID == "" {
		return nil, fmt.Errorf("%w: eventUUID is required", ErrInvalidInput)
	}

	// 1. Проверяем, что событие существует и еще идет
	event, err := uc.eventsService.GetVisitEvent(ctx, req.EventUUID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			return nil, ErrEventNotFound
		case errors.Is(err, events.ErrEventExpired):
			return nil, ErrEventExpired
		default:
			uc.logger.Error("GetVisitSlots: failed to get event uuid=%s: %v", req.EventUUID, err)
			return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}
	}

	// 2. Загружаем слоты
	payload, err := uc.slotsClient.GetAvailableSlots(ctx, req.EventUUID)
	if err != nil {
		uc.logger.Error("GetVisitSlots: failed to get slots uuid=%s: %v", req.EventUUID, err)
		return nil, fmt.Errorf("%w: failed to get available slots: %v", ErrInternal, err)
	}

	// 3. Размечаем доступность: прошедшие даты закрыты независимо от остатка мест
	resolver := availability.NewResolver(payload, uc.timeProvider.Now())

	resp := &Response{
		EventID:   event.ID,
		DateBegin: payload.DateBegin,
		DateEnd:   payload.DateEnd,
		TimeFirst: payload.TimeFirst,
		TimeLast:  payload.TimeLast,
		TimeUnit:  payload.TimeUnit,
		MaxLimit:  payload.MaxLimit,
		Dates:     make([]DateSlots, 0, len(payload.Dates)),
	}

	for _, ds := range payload.Dates {
		date := DateSlots{
			Date:        ds.Date,
			IsAvailable: resolver.IsDateAvailable(ds.Date),
			Times:       make([]Slot, 0, len(ds.Times)),
		}
		for _, ts := range ds.Times {
			date.Times = append(date.Times, Slot{
				Time:        ts.Time,
				Available:   ts.Available,
				IsAvailable: date.IsAvailable && ts.IsAvailable(),
			})
		}
		resp.Dates = append(resp.Dates, date)
	}

	return resp, nil
}
