package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	apperrors "fieldops-system/pkg/errors"
)

type InvoiceRepositoryInterface interface {
	GetInvoices(ctx context.Context) ([]entities.Invoice, error)
	FindInvoice(ctx context.Context, id uint64) (*entities.Invoice, error)
	GetInvoicesByTechnician(ctx context.Context, technicianID uint64) ([]entities.Invoice, error)
	CreateInvoice(ctx context.Context, payload dto.CreateInvoiceDTO) (*entities.Invoice, error)
	UpdateInvoice(ctx context.Context, id uint64, patch dto.UpdateInvoiceDTO) (*entities.Invoice, error)
	DeleteInvoice(ctx context.Context, id uint64) error
	Export(ctx context.Context) ([]entities.Invoice, error)
	Import(ctx context.Context, records []entities.Invoice) (uint64, error)
}

type invoiceRepository struct {
	mu       sync.RWMutex
	ids      *IDAllocator
	invoices map[uint64]entities.Invoice
}

func NewInvoiceRepository(ids *IDAllocator) InvoiceRepositoryInterface {
	return &invoiceRepository{
		ids:      ids,
		invoices: make(map[uint64]entities.Invoice),
	}
}

func (r *invoiceRepository) GetInvoices(_ context.Context) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		list = append(list, inv)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *invoiceRepository) FindInvoice(_ context.Context, id uint64) (*entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (r *invoiceRepository) GetInvoicesByTechnician(_ context.Context, technicianID uint64) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Invoice, 0)
	for _, inv := range r.invoices {
		if inv.TechnicianID == technicianID {
			list = append(list, inv)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *invoiceRepository) CreateInvoice(_ context.Context, payload dto.CreateInvoiceDTO) (*entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	id := r.ids.Next()
	inv := entities.Invoice{
		ID:            id,
		InvoiceNumber: fmt.Sprintf("INV-%06d", id),
		TaskID:        payload.TaskID,
		TechnicianID:  payload.TechnicianID,
		Amount:        payload.Amount,
		Status:        entities.InvoiceStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.invoices[id] = inv
	return &inv, nil
}

func (r *invoiceRepository) UpdateInvoice(_ context.Context, id uint64, patch dto.UpdateInvoiceDTO) (*entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.invoices[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if patch.TaskID != nil {
		inv.TaskID = *patch.TaskID
	}
	if patch.TechnicianID != nil {
		inv.TechnicianID = *patch.TechnicianID
	}
	if patch.Amount != nil {
		inv.Amount = *patch.Amount
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	inv.UpdatedAt = time.Now()

	r.invoices[id] = inv
	return &inv, nil
}

// DeleteInvoice есть в хранилище, но HTTP-маршрута удаления счетов панель
// не выставляет.
func (r *invoiceRepository) DeleteInvoice(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.invoices[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

func (r *invoiceRepository) Export(ctx context.Context) ([]entities.Invoice, error) {
	return r.GetInvoices(ctx)
}

func (r *invoiceRepository) Import(_ context.Context, records []entities.Invoice) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invoices = make(map[uint64]entities.Invoice, len(records))
	var maxID uint64
	for _, inv := range records {
		r.invoices[inv.ID] = inv
		if inv.ID > maxID {
			maxID = inv.ID
		}
	}
	return maxID, nil
}
