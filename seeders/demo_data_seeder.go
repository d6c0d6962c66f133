package seeders

import (
	"context"
	"fmt"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/repositories"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

// seedDemoData наполняет пустое хранилище демонстрационным набором.
// Статусы задач и счетов выставляются патчем после создания, потому что
// create-путь принудительно ставит "pending".
func seedDemoData(ctx context.Context, store *repositories.Store, logger *zap.Logger) error {
	existing, err := store.Technicians.GetTechnicians(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Debug("хранилище не пустое, демо-данные пропущены")
		return nil
	}

	technicianIDs := make([]uint64, 0, len(demoTechnicians))
	for _, payload := range demoTechnicians {
		technician, err := store.Technicians.CreateTechnician(ctx, payload)
		if err != nil {
			return fmt.Errorf("не удалось создать демо-техника: %w", err)
		}
		technicianIDs = append(technicianIDs, technician.ID)
	}

	taskIDs := make([]uint64, 0, len(demoTasks))
	for _, item := range demoTasks {
		payload := item.payload
		if item.technicianIndex >= 0 {
			payload.TechnicianID = null.Uint64From(technicianIDs[item.technicianIndex])
		}
		task, err := store.Tasks.CreateTask(ctx, payload)
		if err != nil {
			return fmt.Errorf("не удалось создать демо-задачу: %w", err)
		}
		taskIDs = append(taskIDs, task.ID)

		if item.status != "pending" {
			status := item.status
			if _, err := store.Tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{Status: &status}); err != nil {
				return fmt.Errorf("не удалось выставить статус демо-задачи: %w", err)
			}
		}
	}

	for _, item := range demoInvoices {
		invoice, err := store.Invoices.CreateInvoice(ctx, dto.CreateInvoiceDTO{
			TaskID:       taskIDs[item.taskIndex],
			TechnicianID: technicianIDs[item.technicianIndex],
			Amount:       item.amount,
		})
		if err != nil {
			return fmt.Errorf("не удалось создать демо-счёт: %w", err)
		}
		if item.status != "pending" {
			status := item.status
			if _, err := store.Invoices.UpdateInvoice(ctx, invoice.ID, dto.UpdateInvoiceDTO{Status: &status}); err != nil {
				return fmt.Errorf("не удалось выставить статус демо-счёта: %w", err)
			}
		}
	}

	for _, item := range demoNotifications {
		notification, err := store.Notifications.CreateNotification(ctx, item.payload)
		if err != nil {
			return fmt.Errorf("не удалось создать демо-уведомление: %w", err)
		}
		if item.isRead {
			if err := store.Notifications.MarkAsRead(ctx, notification.ID); err != nil {
				return err
			}
		}
	}

	logger.Info("демо-данные загружены",
		zap.Int("technicians", len(technicianIDs)),
		zap.Int("tasks", len(taskIDs)),
		zap.Int("invoices", len(demoInvoices)),
		zap.Int("notifications", len(demoNotifications)),
	)
	return nil
}
