package services

import (
	"context"
	"fmt"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type TaskServiceInterface interface {
	GetTasks(ctx context.Context) ([]entities.Task, error)
	FindTask(ctx context.Context, id uint64) (*entities.Task, error)
	GetTasksByTechnician(ctx context.Context, technicianID uint64) ([]entities.Task, error)
	GetTasksByStatus(ctx context.Context, status string) ([]entities.Task, error)
	CreateTask(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uint64, patch dto.UpdateTaskDTO) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskService struct {
	taskRepository         repositories.TaskRepositoryInterface
	notificationRepository repositories.NotificationRepositoryInterface
	logger                 *zap.Logger
}

func NewTaskService(
	taskRepository repositories.TaskRepositoryInterface,
	notificationRepository repositories.NotificationRepositoryInterface,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepository:         taskRepository,
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

func (s *TaskService) GetTasks(ctx context.Context) ([]entities.Task, error) {
	return s.taskRepository.GetTasks(ctx)
}

func (s *TaskService) FindTask(ctx context.Context, id uint64) (*entities.Task, error) {
	return s.taskRepository.FindTask(ctx, id)
}

func (s *TaskService) GetTasksByTechnician(ctx context.Context, technicianID uint64) ([]entities.Task, error) {
	return s.taskRepository.GetTasksByTechnician(ctx, technicianID)
}

func (s *TaskService) GetTasksByStatus(ctx context.Context, status string) ([]entities.Task, error) {
	return s.taskRepository.GetTasksByStatus(ctx, status)
}

func (s *TaskService) CreateTask(ctx context.Context, payload dto.CreateTaskDTO) (*entities.Task, error) {
	task, err := s.taskRepository.CreateTask(ctx, payload)
	if err != nil {
		return nil, err
	}

	if _, err := s.notificationRepository.CreateNotification(ctx, dto.CreateNotificationDTO{
		Type:    "task_created",
		Message: fmt.Sprintf("New task %s created: %s", task.TaskNumber, task.Title),
	}); err != nil {
		return nil, err
	}

	s.logger.Info("задача создана", zap.Uint64("id", task.ID), zap.String("number", task.TaskNumber))
	return task, nil
}

// UpdateTask накладывает патч. Если в патче есть status, пишется
// уведомление о смене статуса - даже когда новое значение совпадает
// со старым.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, patch dto.UpdateTaskDTO) (*entities.Task, error) {
	task, err := s.taskRepository.UpdateTask(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if _, err := s.notificationRepository.CreateNotification(ctx, dto.CreateNotificationDTO{
			Type:    "task_status_changed",
			Message: fmt.Sprintf("Task %s status changed to %s", task.TaskNumber, *patch.Status),
		}); err != nil {
			return nil, err
		}
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.taskRepository.DeleteTask(ctx, id)
}
