package reservations

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

// Service сервис записей на заезд текущей сессии
// Все операции ходят в upstream через клиент сессии с ее cookie
type Service struct {
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(logger Logger) *Service {
	return &Service{logger: logger}
}

// MyReservation получает активную запись и историю записей сессии
func (s *Service) MyReservation(ctx context.Context, sess *session.Session) (*domain.MyReservations, error) {
	if !sess.IsAuthorized() {
		return nil, ErrNotAuthorized
	}

	my, err := sess.Client.MyReservation(ctx, sess.MoveUUID)
	if err != nil {
		if errors.Is(err, moveapi.ErrUnauthorized) {
			s.logger.Warn("MyReservation: upstream session expired for session=%s", sess.ID)
			return nil, ErrNotAuthorized
		}
		s.logger.Error("MyReservation: failed for session=%s: %v", sess.ID, err)
		return nil, fmt.Errorf("%w: failed to get my reservation: %v", ErrInternal, err)
	}

	return my, nil
}

// Cancel отменяет запись на заезд
// После успешной отмены состояние отправки сессии сбрасывается,
// чтобы жилец мог записаться заново
func (s *Service) Cancel(ctx context.Context, sess *session.Session, reservationID int64, reason *string) error {
	if !sess.IsAuthorized() {
		return ErrNotAuthorized
	}
	if reservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if reason != nil && utf8.RuneCountInString(*reason) > domain.MaxCancelReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	err := sess.Client.CancelReservation(ctx, sess.MoveUUID, reservationID, reason)
	if err != nil {
		var apiErr *moveapi.APIError
		switch {
		case errors.As(err, &apiErr):
			s.logger.Warn("Cancel: rejected for session=%s reservation=%d: %v", sess.ID, reservationID, err)
			return err
		case errors.Is(err, moveapi.ErrUnauthorized):
			s.logger.Warn("Cancel: upstream session expired for session=%s", sess.ID)
			return ErrNotAuthorized
		case errors.Is(err, moveapi.ErrEventNotFound):
			s.logger.Warn("Cancel: reservation=%d not found for session=%s", reservationID, sess.ID)
			return ErrReservationNotFound
		default:
			s.logger.Error("Cancel: failed for session=%s reservation=%d: %v", sess.ID, reservationID, err)
			return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}
	}

	sess.Flow.Reset()
	s.logger.Info("Cancel: reservation=%d cancelled for session=%s", reservationID, sess.ID)
	return nil
}
