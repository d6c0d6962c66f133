package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	apperrors "fieldops-system/pkg/errors"
)

type TechnicianRepositoryInterface interface {
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	FindTechnician(ctx context.Context, id uint64) (*entities.Technician, error)
	FindByTelegramID(ctx context.Context, telegramID string) (*entities.Technician, error)
	CreateTechnician(ctx context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error)
	UpdateTechnician(ctx context.Context, id uint64, patch dto.UpdateTechnicianDTO) (*entities.Technician, error)
	DeleteTechnician(ctx context.Context, id uint64) error
	Export(ctx context.Context) ([]entities.Technician, error)
	Import(ctx context.Context, records []entities.Technician) (uint64, error)
}

type technicianRepository struct {
	mu          sync.RWMutex
	ids         *IDAllocator
	technicians map[uint64]entities.Technician
}

func NewTechnicianRepository(ids *IDAllocator) TechnicianRepositoryInterface {
	return &technicianRepository{
		ids:         ids,
		technicians: make(map[uint64]entities.Technician),
	}
}

func (r *technicianRepository) GetTechnicians(_ context.Context) ([]entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Technician, 0, len(r.technicians))
	for _, t := range r.technicians {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *technicianRepository) FindTechnician(_ context.Context, id uint64) (*entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.technicians[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *technicianRepository) FindByTelegramID(_ context.Context, telegramID string) (*entities.Technician, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.technicians {
		if t.TelegramID == telegramID {
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *technicianRepository) CreateTechnician(_ context.Context, payload dto.CreateTechnicianDTO) (*entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Отсутствующий isActive означает "активен".
	isActive := true
	if payload.IsActive.Valid {
		isActive = payload.IsActive.Bool
	}

	t := entities.Technician{
		ID:          r.ids.Next(),
		TelegramID:  payload.TelegramID,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Username:    payload.Username,
		PhoneNumber: payload.PhoneNumber,
		IsActive:    isActive,
		JoinedAt:    time.Now(),
	}
	r.technicians[t.ID] = t
	return &t, nil
}

// UpdateTechnician накладывает патч на существующую запись. joinedAt не
// перештамповывается - у техника нет поля updatedAt.
func (r *technicianRepository) UpdateTechnician(_ context.Context, id uint64, patch dto.UpdateTechnicianDTO) (*entities.Technician, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.technicians[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if patch.TelegramID != nil {
		t.TelegramID = *patch.TelegramID
	}
	if patch.FirstName != nil {
		t.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		t.LastName.SetValid(*patch.LastName)
	}
	if patch.Username != nil {
		t.Username.SetValid(*patch.Username)
	}
	if patch.PhoneNumber != nil {
		t.PhoneNumber.SetValid(*patch.PhoneNumber)
	}
	if patch.IsActive != nil {
		t.IsActive = *patch.IsActive
	}

	r.technicians[id] = t
	return &t, nil
}

// DeleteTechnician удаляет запись жёстко. Задачи и счета, ссылающиеся на
// технику, не трогаются - ссылка остаётся висячей, клиент показывает
// "Unassigned".
func (r *technicianRepository) DeleteTechnician(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.technicians[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.technicians, id)
	return nil
}

func (r *technicianRepository) Export(ctx context.Context) ([]entities.Technician, error) {
	return r.GetTechnicians(ctx)
}

func (r *technicianRepository) Import(_ context.Context, records []entities.Technician) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.technicians = make(map[uint64]entities.Technician, len(records))
	var maxID uint64
	for _, t := range records {
		r.technicians[t.ID] = t
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID, nil
}
