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

type NotificationRepositoryInterface interface {
	GetNotifications(ctx context.Context) ([]entities.Notification, error)
	GetUnreadNotifications(ctx context.Context) ([]entities.Notification, error)
	CreateNotification(ctx context.Context, payload dto.CreateNotificationDTO) (*entities.Notification, error)
	MarkAsRead(ctx context.Context, id uint64) error
	Export(ctx context.Context) ([]entities.Notification, error)
	Import(ctx context.Context, records []entities.Notification) (uint64, error)
}

type notificationRepository struct {
	mu            sync.RWMutex
	ids           *IDAllocator
	notifications map[uint64]entities.Notification
}

func NewNotificationRepository(ids *IDAllocator) NotificationRepositoryInterface {
	return &notificationRepository{
		ids:           ids,
		notifications: make(map[uint64]entities.Notification),
	}
}

// sortNewestFirst: свежие уведомления выше; при равном времени создания
// решает больший id.
func sortNewestFirst(list []entities.Notification) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func (r *notificationRepository) GetNotifications(_ context.Context) ([]entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		list = append(list, n)
	}
	sortNewestFirst(list)
	return list, nil
}

func (r *notificationRepository) GetUnreadNotifications(_ context.Context) ([]entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]entities.Notification, 0)
	for _, n := range r.notifications {
		if !n.IsRead {
			list = append(list, n)
		}
	}
	sortNewestFirst(list)
	return list, nil
}

func (r *notificationRepository) CreateNotification(_ context.Context, payload dto.CreateNotificationDTO) (*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := entities.Notification{
		ID:        r.ids.Next(),
		Type:      payload.Type,
		Message:   payload.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	r.notifications[n.ID] = n
	return &n, nil
}

func (r *notificationRepository) MarkAsRead(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	n.IsRead = true
	r.notifications[id] = n
	return nil
}

func (r *notificationRepository) Export(ctx context.Context) ([]entities.Notification, error) {
	return r.GetNotifications(ctx)
}

func (r *notificationRepository) Import(_ context.Context, records []entities.Notification) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = make(map[uint64]entities.Notification, len(records))
	var maxID uint64
	for _, n := range records {
		r.notifications[n.ID] = n
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	return maxID, nil
}
