package repositories

import (
	"context"
	"sync"
	"time"

	"fieldops-system/internal/entities"
	apperrors "fieldops-system/pkg/errors"
)

type UserRepositoryInterface interface {
	GetUser(ctx context.Context, id uint64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, username, passwordHash, role string) (*entities.User, error)
}

type userRepository struct {
	mu    sync.RWMutex
	ids   *IDAllocator
	users map[uint64]entities.User
}

func NewUserRepository(ids *IDAllocator) UserRepositoryInterface {
	return &userRepository{
		ids:   ids,
		users: make(map[uint64]entities.User),
	}
}

func (r *userRepository) GetUser(_ context.Context, id uint64) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *userRepository) CreateUser(_ context.Context, username, passwordHash, role string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if role == "" {
		role = "admin"
	}
	user := entities.User{
		ID:        r.ids.Next(),
		Username:  username,
		Password:  passwordHash,
		Role:      role,
		CreatedAt: time.Now(),
	}
	r.users[user.ID] = user
	return &user, nil
}
