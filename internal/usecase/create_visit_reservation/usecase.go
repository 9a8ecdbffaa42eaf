package create_visit_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/previsitapi"
	"github.com/m04kA/APT-ReservationService/internal/service/events"
	"github.com/m04kA/APT-ReservationService/pkg/types"
)

// UseCase use case создания записи на осмотр
// Поток осмотра не требует логина: форма открывается по ссылке с UUID
type UseCase struct {
	eventsService     EventsService
	reservationClient ReservationClient
	validator         *validator.Validate
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(eventsService EventsService, reservationClient ReservationClient, logger Logger) *UseCase {
	return &UseCase{
		eventsService:     eventsService,
		reservationClient: reservationClient,
		validator:         newValidator(),
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateVisitReservation: event=%s dongho=%d date=%s time=%s",
		req.EventUUID, req.DonghoID, req.Date, req.Time)

	// 1. Валидация формы
	if err := validateRequest(uc.validator, req); err != nil {
		uc.logger.Warn("CreateVisitReservation: validation failed: %v", err)
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}
	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем, что событие существует и еще идет
	_, err = uc.eventsService.GetVisitEvent(ctx, req.EventUUID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			return nil, ErrEventNotFound
		case errors.Is(err, events.ErrEventExpired):
			return nil, ErrEventExpired
		default:
			uc.logger.Error("CreateVisitReservation: failed to get event uuid=%s: %v", req.EventUUID, err)
			return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
		}
	}

	// 3. Предварительная проверка слота по свежим данным
	// Финальное слово за сервером записи: слот могли занять после проверки
	payload, err := uc.reservationClient.GetAvailableSlots(ctx, req.EventUUID)
	if err != nil {
		uc.logger.Error("CreateVisitReservation: failed to get slots uuid=%s: %v", req.EventUUID, err)
		return nil, fmt.Errorf("%w: failed to get available slots: %v", ErrInternal, err)
	}

	resolver := availability.NewResolver(payload, uc.timeProvider.Now())
	if !slotIsAvailable(resolver, date, slotTime) {
		uc.logger.Warn("CreateVisitReservation: slot date=%s time=%s is not available", req.Date, req.Time)
		return nil, ErrSlotNotAvailable
	}

	// 4. Создаем запись
	id, err := uc.reservationClient.CreateReservation(ctx, req.EventUUID, &previsitapi.CreateReservationRequest{
		DonghoID:        req.DonghoID,
		ReservationDate: req.Date,
		ReservationTime: slotTime.String(),
		WriterName:      req.WriterName,
		WriterPhone:     req.WriterPhone,
		Memo:            req.Memo,
	})
	if err != nil {
		var apiErr *previsitapi.APIError
		if errors.As(err, &apiErr) {
			// Сообщение сервера (например "마감") уходит пользователю как есть
			uc.logger.Warn("CreateVisitReservation: rejected by upstream: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateVisitReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateVisitReservation: reservation id=%d created for event=%s", id, req.EventUUID)
	return &Response{
		ID:   id,
		Date: date,
		Time: slotTime,
	}, nil
}

// slotIsAvailable проверяет, что слот существует и в нем есть места
func slotIsAvailable(resolver *availability.Resolver, date time.Time, t types.TimeString) bool {
	if !resolver.IsDateAvailable(date) {
		return false
	}
	for _, slot := range resolver.TimesFor(date) {
		if slot.Time.Equal(t) {
			return slot.IsAvailable()
		}
	}
	return false
}
