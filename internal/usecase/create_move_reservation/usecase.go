package create_move_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/flow"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/service/movesession"
)

// UseCase use case создания записи на заезд
// Берет подтвержденный выбор из автомата сессии и проводит отправку
// через поток, который гарантирует не более одного запроса за раз
type UseCase struct {
	sessionService SessionService
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionService SessionService, logger Logger) *UseCase {
	return &UseCase{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Execute выполняет use case создания записи
// Вызывается под Lock сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess := req.Session

	machine, err := uc.sessionService.Machine(sess)
	if err != nil {
		switch {
		case errors.Is(err, movesession.ErrNotAuthorized):
			return nil, ErrNotAuthorized
		case errors.Is(err, movesession.ErrSlotsNotLoaded):
			return nil, ErrSlotsNotLoaded
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 1. Прошлая отправка завершилась ошибкой: этот запрос и есть
	// явный повтор, автоматических ретраев не бывает
	if sess.Flow.State() == flow.StateFailed {
		if err := sess.Flow.Retry(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 2. Фиксируем выбор
	snap, err := uc.confirmedSnapshot(machine)
	if err != nil {
		uc.logger.Warn("CreateMoveReservation: selection not ready for session=%s: %v", sess.ID, err)
		return nil, err
	}
	if snap.Line == nil {
		return nil, ErrLineRequired
	}
	line := *snap.Line

	// 3. Отправляем ровно один запрос
	id, err := sess.Flow.Submit(ctx, func(ctx context.Context) (int64, error) {
		return sess.Client.CreateReservation(ctx, sess.MoveUUID, &moveapi.CreateReservationRequest{
			ReservationEvline: line,
			ReservationDate:   snap.Date.Format(domain.DateFormat),
			ReservationTime:   snap.Time.String(),
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrSubmissionInFlight):
			return nil, ErrSubmissionInFlight
		case errors.Is(err, flow.ErrAlreadySucceeded):
			return nil, ErrAlreadyReserved
		default:
			var apiErr *moveapi.APIError
			if errors.As(err, &apiErr) {
				// Сообщение сервера (например "마감") уходит пользователю как есть
				uc.logger.Warn("CreateMoveReservation: rejected by upstream for session=%s: %v", sess.ID, err)
				return nil, err
			}
			uc.logger.Error("CreateMoveReservation: submit failed for session=%s: %v", sess.ID, err)
			return nil, fmt.Errorf("%w: submit failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateMoveReservation: reservation id=%d created for session=%s line=%s", id, sess.ID, line)
	return &Response{
		ID:   id,
		Date: snap.Date,
		Time: snap.Time,
		Line: line,
	}, nil
}

// confirmedSnapshot подтверждает выбор либо возвращает уже подтвержденный
// Повторная отправка после ошибки использует прежний снимок
func (uc *UseCase) confirmedSnapshot(machine *selection.Machine) (*selection.Snapshot, error) {
	if machine.State() == selection.StateConfirmed {
		return machine.Snapshot()
	}

	snap, err := machine.Confirm()
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrLinePending):
			return nil, ErrLineRequired
		case errors.Is(err, selection.ErrSelectionIncomplete):
			return nil, ErrSelectionIncomplete
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return snap, nil
}
