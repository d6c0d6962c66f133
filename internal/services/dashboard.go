package services

import (
	"context"
	"strconv"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	taskRepository       repositories.TaskRepositoryInterface
	technicianRepository repositories.TechnicianRepositoryInterface
	invoiceRepository    repositories.InvoiceRepositoryInterface
	logger               *zap.Logger
}

func NewDashboardService(
	taskRepository repositories.TaskRepositoryInterface,
	technicianRepository repositories.TechnicianRepositoryInterface,
	invoiceRepository repositories.InvoiceRepositoryInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		taskRepository:       taskRepository,
		technicianRepository: technicianRepository,
		invoiceRepository:    invoiceRepository,
		logger:               logger,
	}
}

// GetDashboardStats собирает сводку по всем хранилищам. Выручка
// суммируется по всем оплаченным счетам без фильтра по месяцу.
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	tasks, err := s.taskRepository.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	technicians, err := s.technicianRepository.GetTechnicians(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepository.GetInvoices(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{TotalTechnicians: len(technicians)}

	for _, task := range tasks {
		switch task.Status {
		case entities.TaskStatusSent, entities.TaskStatusAccepted, entities.TaskStatusInProgress:
			stats.ActiveTasks++
		}
	}

	for _, technician := range technicians {
		if technician.IsActive {
			stats.ActiveTechnicians++
		}
	}

	for _, invoice := range invoices {
		switch invoice.Status {
		case entities.InvoiceStatusPending:
			stats.PendingInvoices++
		case entities.InvoiceStatusPaid:
			amount, err := strconv.ParseFloat(invoice.Amount, 64)
			if err != nil {
				// Формат суммы проверяется при записи; битое значение
				// не должно валить весь дашборд.
				s.logger.Warn("не удалось разобрать сумму счёта",
					zap.Uint64("invoiceId", invoice.ID),
					zap.String("amount", invoice.Amount),
				)
				continue
			}
			stats.MonthlyRevenue += amount
		}
	}

	return stats, nil
}
