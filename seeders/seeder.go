package seeders

import (
	"context"

	"fieldops-system/internal/repositories"
	"fieldops-system/pkg/config"

	"go.uber.org/zap"
)

// Run выполняет сидеры при старте процесса. Администратор создаётся
// всегда, демо-данные только при SEED_DEMO_DATA=true.
func Run(ctx context.Context, store *repositories.Store, cfg *config.Config, logger *zap.Logger) error {
	if err := seedAdminUser(ctx, store, cfg, logger); err != nil {
		return err
	}
	if cfg.Seed.DemoData {
		if err := seedDemoData(ctx, store, logger); err != nil {
			return err
		}
	}
	return nil
}
