package services

import (
	"context"
	"fmt"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type InvoiceServiceInterface interface {
	GetInvoices(ctx context.Context) ([]entities.Invoice, error)
	FindInvoice(ctx context.Context, id uint64) (*entities.Invoice, error)
	GetInvoicesByTechnician(ctx context.Context, technicianID uint64) ([]entities.Invoice, error)
	CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*entities.Invoice, error)
	UpdateInvoice(ctx context.Context, id uint64, patch dto.UpdateInvoiceDTO) (*entities.Invoice, error)
}

type InvoiceService struct {
	invoiceRepository      repositories.InvoiceRepositoryInterface
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewInvoiceService(
	invoiceRepository repositories.InvoiceRepositoryInterface,
	notificationRepository repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepository:      invoiceRepository,
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

func (s *InvoiceService) GetInvoices(ctx context.Context) ([]entities.Invoice, error) {
	return s.invoiceRepository.GetInvoices(ctx)
}

func (s *InvoiceService) FindInvoice(ctx context.Context, id uint64) (*entities.Invoice, error) {
	return s.invoiceRepository.FindInvoice(ctx, id)
}

func (s *InvoiceService) GetInvoicesByTechnician(ctx context.Context, technicianID uint64) ([]entities.Invoice, error) {
	return s.invoiceRepository.GetInvoicesByTechnician(ctx, technicianID)
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*entities.Invoice, error) {
	invoice, err := s.invoiceRepository.CreateInvoice(ctx, payload)
	if err != nil {
		return nil, err
	}

	if _, err := s.notificationRepository.CreateNotification(ctx, dto.CreateNotificationDTO{
		Type:    "invoice_created",
		Message: fmt.Sprintf("New invoice %s created", invoice.InvoiceNumber),
	}); err != nil {
		return nil, err
	}

	s.logger.Info("счёт создан", zap.Uint64("id", invoice.ID), zap.String("number", invoice.InvoiceNumber))
	return invoice, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uint64, patch dto.UpdateInvoiceDTO) (*entities.Invoice, error) {
	return s.invoiceRepository.UpdateInvoice(ctx, id, patch)
}
