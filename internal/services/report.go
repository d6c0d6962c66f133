package services

import (
	"context"
	"strconv"

	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"
)

// TechnicianSummary - строка сводного листа отчёта: те же цифры, что
// страница отчётов панели считает на клиенте.
type TechnicianSummary struct {
	TechnicianID   uint64
	Name           string
	TotalTasks     int
	CompletedTasks int
	PaidRevenue    float64
}

// ReportData - всё, что нужно контроллеру для выгрузки XLSX.
type ReportData struct {
	Tasks       []entities.Task
	Technicians map[uint64]entities.Technician
	Summaries   []TechnicianSummary
}

type ReportServiceInterface interface {
	GetReportData(ctx context.Context) (*ReportData, error)
}

type ReportService struct {
	taskRepository       repositories.TaskRepositoryInterface
	technicianRepository repositories.TechnicianRepositoryInterface
	invoiceRepository    repositories.InvoiceRepositoryInterface
}

func NewReportService(
	taskRepository repositories.TaskRepositoryInterface,
	technicianRepository repositories.TechnicianRepositoryInterface,
	invoiceRepository repositories.InvoiceRepositoryInterface,
) *ReportService {
	return &ReportService{
		taskRepository:       taskRepository,
		technicianRepository: technicianRepository,
		invoiceRepository:    invoiceRepository,
	}
}

func (s *ReportService) GetReportData(ctx context.Context) (*ReportData, error) {
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

	data := &ReportData{
		Tasks:       tasks,
		Technicians: make(map[uint64]entities.Technician, len(technicians)),
	}

	for _, technician := range technicians {
		data.Technicians[technician.ID] = technician

		summary := TechnicianSummary{
			TechnicianID: technician.ID,
			Name:         technician.FullName(),
		}
		for _, task := range tasks {
			if !task.TechnicianID.Valid || task.TechnicianID.Uint64 != technician.ID {
				continue
			}
			summary.TotalTasks++
			if task.Status == entities.TaskStatusCompleted {
				summary.CompletedTasks++
			}
		}
		for _, invoice := range invoices {
			if invoice.TechnicianID != technician.ID || invoice.Status != entities.InvoiceStatusPaid {
				continue
			}
			if amount, err := strconv.ParseFloat(invoice.Amount, 64); err == nil {
				summary.PaidRevenue += amount
			}
		}
		data.Summaries = append(data.Summaries, summary)
	}

	return data, nil
}
