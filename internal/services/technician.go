package services

import (
	"context"
	"fmt"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type TechnicianServiceInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id uint64, patch dto.UpdateTechnicianDTO) (*entities.Technician, error)
	DeleteTechnician(ctx context.Context, id uint64) error
}

type TechnicianService struct {
	technicianRepository   repositories.TechnicianRepositoryInterface
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewTechnicianService(
	technicianRepository repositories.TechnicianRepositoryInterface,
	notificationRepository repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) *TechnicianService {
	return &TechnicianService{
		technicianRepository:   technicianRepository,
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

func (s *TechnicianService) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return s.technicianRepository.GetTechnicians(ctx)
}

func (s *TechnicianService) FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error) {
	return s.technicianRepository.FindTechnician(ctx, id)
}

// CreateTechnician создаёт запись и синхронно пишет уведомление в журнал.
func (s *TechnicianService) CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error) {
	technician, err := s.technicianRepository.CreateTechnician(ctx, payload)
	if err != nil {
		return nil, err
	}

	if _, err := s.notificationRepository.CreateNotification(ctx, dto.CreateNotificationDTO{
		Type:    "technician_added",
		Message: fmt.Sprintf("New technician %s added", technician.FullName()),
	}); err != nil {
		return nil, err
	}

	s.logger.Info("техник создан",
		zap.Uint64("id", technician.ID),
		zap.String("telegramId", technician.TelegramID),
	)
	return technician, nil
}

func (s *TechnicianService) UpdateTechnician(ctx context.Context, id uint64, patch dto.UpdateTechnicianDTO) (*entities.Technician, error) {
	return s.technicianRepository.UpdateTechnician(ctx, id, patch)
}

func (s *TechnicianService) DeleteTechnician(ctx context.Context, id uint64) error {
	return s.technicianRepository.DeleteTechnician(ctx, id)
}
