package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/moveapi"
	"github.com/m04kA/APT-ReservationService/internal/integrations/previsitapi"
)

// Service сервис для получения событий осмотра и заезда
// Отвечает за проверку, что событие существует и его период еще не прошел
type Service struct {
	previsitClient PrevisitClient
	moveClient     MoveClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(previsitClient PrevisitClient, moveClient MoveClient, logger Logger) *Service {
	return &Service{
		previsitClient: previsitClient,
		moveClient:     moveClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// GetVisitEvent получает событие осмотра по UUID
func (s *Service) GetVisitEvent(ctx context.Context, uuid string) (*domain.PrevisitEvent, error) {
	event, err := s.previsitClient.GetEvent(ctx, uuid)
	if err != nil {
		if errors.Is(err, previsitapi.ErrEventNotFound) {
			s.logger.Warn("GetVisitEvent: event uuid=%s not found", uuid)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetVisitEvent: failed to get event uuid=%s: %v", uuid, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if event.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("GetVisitEvent: event uuid=%s is expired", uuid)
		return nil, ErrEventExpired
	}

	return event, nil
}

// GetVisitEventForProject получает событие осмотра в рамках проекта
// Используется ссылками формата /project/{projectId}/previsit/{uuid}
func (s *Service) GetVisitEventForProject(ctx context.Context, projectID int64, uuid string) (*domain.PrevisitEvent, error) {
	event, err := s.previsitClient.GetEventForProject(ctx, projectID, uuid)
	if err != nil {
		if errors.Is(err, previsitapi.ErrEventNotFound) {
			s.logger.Warn("GetVisitEventForProject: event uuid=%s not found in project=%d", uuid, projectID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetVisitEventForProject: failed to get event uuid=%s: %v", uuid, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if event.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("GetVisitEventForProject: event uuid=%s is expired", uuid)
		return nil, ErrEventExpired
	}

	return event, nil
}

// GetMoveEvent получает событие заезда по UUID
func (s *Service) GetMoveEvent(ctx context.Context, uuid string) (*domain.MoveEvent, error) {
	event, err := s.moveClient.GetEvent(ctx, uuid)
	if err != nil {
		if errors.Is(err, moveapi.ErrEventNotFound) {
			s.logger.Warn("GetMoveEvent: event uuid=%s not found", uuid)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetMoveEvent: failed to get event uuid=%s: %v", uuid, err)
		return nil, fmt.Errorf("%w: failed to get event: %v", ErrInternal, err)
	}

	if event.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("GetMoveEvent: event uuid=%s is expired", uuid)
		return nil, ErrEventExpired
	}

	return event, nil
}
