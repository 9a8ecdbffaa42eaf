package movesession

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/APT-ReservationService/internal/availability"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/selection"
	"github.com/m04kA/APT-ReservationService/internal/session"
)

// Service управляет жизненным циклом сессий move-потока
// Логин создает сессию с собственным upstream-клиентом, выбор слота
// живет в конечном автомате сессии до подтверждения
type Service struct {
	store        *session.Store
	factory      ClientFactory
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(store *session.Store, factory ClientFactory, logger Logger) *Service {
	return &Service{
		store:        store,
		factory:      factory,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login авторизует жильца и создает новую сессию
// Upstream-cookie остается в jar клиента, привязанного к сессии
func (s *Service) Login(ctx context.Context, moveUUID string, req *moveapi.LoginRequest) (*session.Session, error) {
	client := s.factory.NewClient()

	unit, err := client.Login(ctx, moveUUID, req)
	if err != nil {
		var apiErr *moveapi.APIError
		switch {
		case errors.As(err, &apiErr):
			// Сообщение upstream показывается пользователю как есть
			s.logger.Warn("Login: rejected for move=%s dongho=%d: %v", moveUUID, req.DonghoID, err)
			return nil, err
		case errors.Is(err, moveapi.ErrUnauthorized):
			s.logger.Warn("Login: invalid credentials for move=%s dongho=%d", moveUUID, req.DonghoID)
			return nil, ErrLoginFailed
		case errors.Is(err, moveapi.ErrEventNotFound):
			s.logger.Warn("Login: move event=%s not found", moveUUID)
			return nil, ErrEventNotFound
		default:
			s.logger.Error("Login: failed for move=%s: %v", moveUUID, err)
			return nil, fmt.Errorf("%w: login failed: %v", ErrInternal, err)
		}
	}

	sess, err := s.store.Create(moveUUID, client)
	if err != nil {
		s.logger.Error("Login: failed to create session for move=%s: %v", moveUUID, err)
		return nil, fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
	}
	sess.Unit = unit

	s.logger.Info("Login: session=%s created for move=%s dong=%s ho=%s", sess.ID, moveUUID, unit.Dong, unit.Ho)
	return sess, nil
}

// Logout завершает upstream-сессию и удаляет локальную
// Ошибка upstream-логаута не мешает удалению: сессия все равно умирает
func (s *Service) Logout(ctx context.Context, sess *session.Session) {
	if err := sess.Client.Logout(ctx, sess.MoveUUID); err != nil {
		s.logger.Warn("Logout: upstream logout failed for session=%s: %v", sess.ID, err)
	}
	s.store.Delete(sess.ID)
	s.logger.Info("Logout: session=%s removed", sess.ID)
}

// RefreshSlots загружает актуальные слоты и пересобирает автомат выбора
// Прежний незавершенный выбор при этом сбрасывается
// Вызывается под Lock сессии
func (s *Service) RefreshSlots(ctx context.Context, sess *session.Session) error {
	if !sess.IsAuthorized() {
		return ErrNotAuthorized
	}

	payload, err := sess.Client.GetAvailableSlots(ctx, sess.MoveUUID)
	if err != nil {
		if errors.Is(err, moveapi.ErrUnauthorized) {
			s.logger.Warn("RefreshSlots: upstream session expired for session=%s", sess.ID)
			return ErrNotAuthorized
		}
		s.logger.Error("RefreshSlots: failed for session=%s: %v", sess.ID, err)
		return fmt.Errorf("%w: failed to get available slots: %v", ErrInternal, err)
	}

	resolver := availability.NewResolver(payload, s.timeProvider.Now())
	sess.Payload = payload
	sess.Machine = selection.NewMachine(resolver)
	sess.Flow.Reset()

	s.logger.Info("RefreshSlots: session=%s loaded %d dates", sess.ID, len(payload.Dates))
	return nil
}

// Machine возвращает автомат выбора сессии
// Вызывается под Lock сессии
func (s *Service) Machine(sess *session.Session) (*selection.Machine, error) {
	if !sess.IsAuthorized() {
		return nil, ErrNotAuthorized
	}
	if sess.Machine == nil {
		return nil, ErrSlotsNotLoaded
	}
	return sess.Machine, nil
}
