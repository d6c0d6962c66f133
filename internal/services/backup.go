package services

import (
	"context"
	"fmt"
	"time"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type BackupServiceInterface interface {
	Snapshot(ctx context.Context) (*dto.BackupDTO, error)
	Restore(ctx context.Context, snapshot dto.BackupDTO) error
}

// BackupService снимает и восстанавливает полное состояние хранилища.
// После восстановления общий счётчик id сдвигается за максимальный
// встреченный id, чтобы новые записи не конфликтовали со старыми.
type BackupService struct {
	ids                    *repositories.IDAllocator
	technicianRepository   repositories.TechnicianRepositoryInterface
	taskRepository         repositories.TaskRepositoryInterface
	invoiceRepository      repositories.InvoiceRepositoryInterface
	botSettingsRepository  repositories.BotSettingsRepositoryInterface
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewBackupService(
	ids *repositories.IDAllocator,
	technicianRepository repositories.TechnicianRepositoryInterface,
	taskRepository repositories.TaskRepositoryInterface,
	invoiceRepository repositories.InvoiceRepositoryInterface,
	botSettingsRepository repositories.BotSettingsRepositoryInterface,
	notificationRepository repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) *BackupService {
	return &BackupService{
		ids:                    ids,
		technicianRepository:   technicianRepository,
		taskRepository:         taskRepository,
		invoiceRepository:      invoiceRepository,
		botSettingsRepository:  botSettingsRepository,
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

func (s *BackupService) Snapshot(ctx context.Context) (*dto.BackupDTO, error) {
	technicians, err := s.technicianRepository.Export(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepository.Export(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepository.Export(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.botSettingsRepository.Export(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notificationRepository.Export(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &dto.BackupDTO{
		Name:          fmt.Sprintf("backup_%s", now.Format("2006-01-02_15-04-05")),
		CreatedAt:     now,
		Technicians:   technicians,
		Tasks:         tasks,
		Invoices:      invoices,
		BotSettings:   settings,
		Notifications: notifications,
	}, nil
}

func (s *BackupService) Restore(ctx context.Context, snapshot dto.BackupDTO) error {
	maxTechnician, err := s.technicianRepository.Import(ctx, snapshot.Technicians)
	if err != nil {
		return err
	}
	maxTask, err := s.taskRepository.Import(ctx, snapshot.Tasks)
	if err != nil {
		return err
	}
	maxInvoice, err := s.invoiceRepository.Import(ctx, snapshot.Invoices)
	if err != nil {
		return err
	}
	if err := s.botSettingsRepository.Import(ctx, snapshot.BotSettings); err != nil {
		return err
	}
	maxNotification, err := s.notificationRepository.Import(ctx, snapshot.Notifications)
	if err != nil {
		return err
	}

	for _, maxID := range []uint64{maxTechnician, maxTask, maxInvoice, maxNotification} {
		s.ids.Advance(maxID)
	}

	s.logger.Info("хранилище восстановлено из снимка",
		zap.String("name", snapshot.Name),
		zap.Int("technicians", len(snapshot.Technicians)),
		zap.Int("tasks", len(snapshot.Tasks)),
		zap.Int("invoices", len(snapshot.Invoices)),
		zap.Int("notifications", len(snapshot.Notifications)),
	)
	return nil
}
