package seeders

import (
	"context"
	"fmt"

	"fieldops-system/internal/repositories"
	"fieldops-system/pkg/config"
	"fieldops-system/pkg/utils"

	"go.uber.org/zap"
)

// seedAdminUser создаёт учётную запись администратора, если её ещё нет.
// Пароль хранится только в виде bcrypt-хеша.
func seedAdminUser(ctx context.Context, store *repositories.Store, cfg *config.Config, logger *zap.Logger) error {
	if existing, _ := store.Users.GetUserByUsername(ctx, cfg.Auth.AdminUsername); existing != nil {
		logger.Debug("администратор уже существует, пропускаем", zap.String("username", cfg.Auth.AdminUsername))
		return nil
	}

	hash, err := utils.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return fmt.Errorf("не удалось захешировать пароль администратора: %w", err)
	}
	if _, err := store.Users.CreateUser(ctx, cfg.Auth.AdminUsername, hash, "admin"); err != nil {
		return fmt.Errorf("не удалось создать администратора: %w", err)
	}

	logger.Info("создан пользователь-администратор", zap.String("username", cfg.Auth.AdminUsername))
	return nil
}
