package repositories

import (
	"context"
	"sync"
	"time"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
)

// Запись настроек одна на всё приложение, id зафиксирован.
const botSettingsID = 1

type BotSettingsRepositoryInterface interface {
	GetBotSettings(ctx context.Context) (*entities.BotSettings, error)
	UpdateBotSettings(ctx context.Context, payload dto.UpdateBotSettingsDTO) (*entities.BotSettings, error)
	Export(ctx context.Context) (*entities.BotSettings, error)
	Import(ctx context.Context, record *entities.BotSettings) error
}

type botSettingsRepository struct {
	mu       sync.RWMutex
	settings entities.BotSettings
}

// NewBotSettingsRepository создаёт хранилище с дефолтной записью:
// пустой токен, бот выключен. GET всегда отвечает 200.
func NewBotSettingsRepository() BotSettingsRepositoryInterface {
	return &botSettingsRepository{
		settings: entities.BotSettings{
			ID:        botSettingsID,
			BotToken:  "",
			IsActive:  false,
			UpdatedAt: time.Now(),
		},
	}
}

func (r *botSettingsRepository) GetBotSettings(_ context.Context) (*entities.BotSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.settings
	return &s, nil
}

// UpdateBotSettings заменяет запись целиком, без слияния с прежней.
func (r *botSettingsRepository) UpdateBotSettings(_ context.Context, payload dto.UpdateBotSettingsDTO) (*entities.BotSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = entities.BotSettings{
		ID:               botSettingsID,
		BotToken:         payload.BotToken,
		GoogleMapsAPIKey: payload.GoogleMapsAPIKey,
		IsActive:         payload.IsActive.Valid && payload.IsActive.Bool,
		UpdatedAt:        time.Now(),
	}
	s := r.settings
	return &s, nil
}

func (r *botSettingsRepository) Export(ctx context.Context) (*entities.BotSettings, error) {
	return r.GetBotSettings(ctx)
}

func (r *botSettingsRepository) Import(_ context.Context, record *entities.BotSettings) error {
	if record == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = *record
	r.settings.ID = botSettingsID
	return nil
}
