package services

import (
	"context"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"

	"go.uber.org/zap"
)

type BotSettingsServiceInterface interface {
	GetBotSettings(ctx context.Context) (*entities.BotSettings, error)
	UpdateBotSettings(ctx context.Context, payload dto.UpdateBotSettingsDTO) (*entities.BotSettings, error)
}

type BotSettingsService struct {
	botSettingsRepository repositories.BotSettingsRepositoryInterface
	logger                *zap.Logger
}

func NewBotSettingsService(botSettingsRepository repositories.BotSettingsRepositoryInterface, logger *zap.Logger) *BotSettingsService {
	return &BotSettingsService{botSettingsRepository: botSettingsRepository, logger: logger}
}

func (s *BotSettingsService) GetBotSettings(ctx context.Context) (*entities.BotSettings, error) {
	return s.botSettingsRepository.GetBotSettings(ctx)
}

func (s *BotSettingsService) UpdateBotSettings(ctx context.Context, payload dto.UpdateBotSettingsDTO) (*entities.BotSettings, error) {
	settings, err := s.botSettingsRepository.UpdateBotSettings(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("настройки бота обновлены", zap.Bool("isActive", settings.IsActive))
	return settings, nil
}
