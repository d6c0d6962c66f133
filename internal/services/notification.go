package services

import (
	"context"

	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context) ([]entities.Notification, error)
	GetUnreadNotifications(ctx context.Context) ([]entities.Notification, error)
	MarkAsRead(ctx context.Context, id uint64) error
}

type NotificationService struct {
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewNotificationService(notificationRepository repositories.NotificationRepositoryInterface, logger *zap.Logger) *NotificationService {
	return &NotificationService{notificationRepository: notificationRepository, logger: logger}
}

func (s *NotificationService) GetNotifications(ctx context.Context) ([]entities.Notification, error) {
	return s.notificationRepository.GetNotifications(ctx)
}

func (s *NotificationService) GetUnreadNotifications(ctx context.Context) ([]entities.Notification, error) {
	return s.notificationRepository.GetUnreadNotifications(ctx)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uint64) error {
	return s.notificationRepository.MarkAsRead(ctx, id)
}
