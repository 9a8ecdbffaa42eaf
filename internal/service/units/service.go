package units

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/APT-ReservationService/internal/domain"
	"github.com/m04kA/APT-ReservationService/internal/integrations/customerapi"
)

// Service сервис для получения домов и квартир проекта
// Работает через сервисный аккаунт customer API: форма записи на осмотр
// должна показывать списки без логина жильца
type Service struct {
	customerClient CustomerClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса
func NewService(customerClient CustomerClient, logger Logger) *Service {
	return &Service{
		customerClient: customerClient,
		logger:         logger,
	}
}

// GetDongs получает список домов проекта
func (s *Service) GetDongs(ctx context.Context, projectID int64) ([]string, error) {
	if projectID <= 0 {
		return nil, fmt.Errorf("%w: projectID must be positive", ErrInvalidInput)
	}

	dongs, err := s.customerClient.GetDongs(ctx, projectID)
	if err != nil {
		if errors.Is(err, customerapi.ErrNotFound) {
			s.logger.Warn("GetDongs: project id=%d not found", projectID)
			return nil, ErrProjectNotFound
		}
		s.logger.Error("GetDongs: failed to get dongs for project=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to get dongs: %v", ErrInternal, err)
	}

	return dongs, nil
}

// GetDonghos получает список квартир указанного дома
func (s *Service) GetDonghos(ctx context.Context, projectID int64, dong string) ([]domain.Dongho, error) {
	if projectID <= 0 {
		return nil, fmt.Errorf("%w: projectID must be positive", ErrInvalidInput)
	}
	if dong == "" {
		return nil, fmt.Errorf("%w: dong is required", ErrInvalidInput)
	}

	donghos, err := s.customerClient.GetDonghos(ctx, projectID, dong)
	if err != nil {
		if errors.Is(err, customerapi.ErrNotFound) {
			s.logger.Warn("GetDonghos: project id=%d not found", projectID)
			return nil, ErrProjectNotFound
		}
		s.logger.Error("GetDonghos: failed to get donghos for project=%d dong=%s: %v", projectID, dong, err)
		return nil, fmt.Errorf("%w: failed to get donghos: %v", ErrInternal, err)
	}

	return donghos, nil
}
