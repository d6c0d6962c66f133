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

	"github.com/aarondl/null/v8"
)

type TaskRepositoryInterface interface {
	GetTasks(ctx context.Context) ([]entities.Task, error)
	FindTask(ctx context.Context, id uint64) (*entities.Task, error)
	GetTasksByTechnician(ctx context.Context, technicianID uint64) ([]entities.Task, error)
	GetTasksByStatus(ctx context.Context, status string) ([]entities.Task, error)
	CreateTask(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uint64, patch dto.UpdateTaskDTO) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	Export(ctx context.Context) ([]entities.Task, error)
	Import(ctx context.Context, records []entities.Task) (uint64, error)
}

type taskRepository struct {
	mu    sync.RWMutex
	ids   *IDAllocator
	tasks map[uint64]entities.Task
}

func NewTaskRepository(ids *IDAllocator) TaskRepositoryInterface {
	return &taskRepository{
		ids:   ids,
		tasks: make(map[uint64]entities.Task),
	}
}

func (r *taskRepository) GetTasks(_ context.Context) ([]entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *taskRepository) FindTask(_ context.Context, id uint64) (*entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (r *taskRepository) GetTasksByTechnician(_ context.Context, technicianID uint64) ([]entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Task, 0)
	for _, t := range r.tasks {
		if t.TechnicianID.Valid && t.TechnicianID.Uint64 == technicianID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *taskRepository) GetTasksByStatus(_ context.Context, status string) ([]entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Task, 0)
	for _, t := range r.tasks {
		if t.Status == status {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// CreateTask выдаёт id из общего счётчика и один раз вычисляет
// производный номер. Статус всегда "pending", что бы ни пришло в теле.
func (r *taskRepository) CreateTask(_ context.Context, payload dto.CreateTaskDTO) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	id := r.ids.Next()
	t := entities.Task{
		ID:                id,
		TaskNumber:        fmt.Sprintf("TK-%06d", id),
		Title:             payload.Title,
		Description:       payload.Description,
		ClientName:        payload.ClientName,
		ClientPhone:       payload.ClientPhone,
		Location:          payload.Location,
		MapURL:            payload.MapURL,
		TechnicianID:      payload.TechnicianID,
		Status:            entities.TaskStatusPending,
		ScheduledDate:     payload.ScheduledDate,
		ScheduledTimeFrom: payload.ScheduledTimeFrom,
		ScheduledTimeTo:   payload.ScheduledTimeTo,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	r.tasks[id] = t
	return &t, nil
}

func (r *taskRepository) UpdateTask(_ context.Context, id uint64, patch dto.UpdateTaskDTO) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ClientName != nil {
		t.ClientName = *patch.ClientName
	}
	if patch.ClientPhone != nil {
		t.ClientPhone = *patch.ClientPhone
	}
	if patch.Location != nil {
		t.Location = *patch.Location
	}
	if patch.MapURL != nil {
		t.MapURL.SetValid(*patch.MapURL)
	}
	if patch.TechnicianID != nil {
		t.TechnicianID = null.Uint64From(*patch.TechnicianID)
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.ScheduledDate != nil {
		t.ScheduledDate = *patch.ScheduledDate
	}
	if patch.ScheduledTimeFrom != nil {
		t.ScheduledTimeFrom = *patch.ScheduledTimeFrom
	}
	if patch.ScheduledTimeTo != nil {
		t.ScheduledTimeTo = *patch.ScheduledTimeTo
	}
	t.UpdatedAt = time.Now()

	r.tasks[id] = t
	return &t, nil
}

func (r *taskRepository) DeleteTask(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *taskRepository) Export(ctx context.Context) ([]entities.Task, error) {
	return r.GetTasks(ctx)
}

func (r *taskRepository) Import(_ context.Context, records []entities.Task) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make(map[uint64]entities.Task, len(records))
	var maxID uint64
	for _, t := range records {
		r.tasks[t.ID] = t
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID, nil
}
