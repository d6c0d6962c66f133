package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fieldops-system/internal/controllers"
	"fieldops-system/internal/repositories"
	"fieldops-system/internal/services"
	"fieldops-system/pkg/config"
	"fieldops-system/pkg/middleware"
)

// InitRouter собирает сервисы и контроллеры поверх общего хранилища и
// вешает все маршруты панели на /api. Всё, кроме логина, закрыто
// bearer-токеном.
func InitRouter(e *echo.Echo, store *repositories.Store, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(cfg.Auth.Token, logger)
	secureGroup := api.Group("", authMW.Auth)

	authService := services.NewAuthService(store.Users, cfg.Auth.Token, logger)
	technicianService := services.NewTechnicianService(store.Technicians, store.Notifications, logger)
	taskService := services.NewTaskService(store.Tasks, store.Notifications, logger)
	invoiceService := services.NewInvoiceService(store.Invoices, store.Notifications, logger)
	botSettingsService := services.NewBotSettingsService(store.BotSettings, logger)
	notificationService := services.NewNotificationService(store.Notifications, logger)
	dashboardService := services.NewDashboardService(store.Tasks, store.Technicians, store.Invoices, logger)
	reportService := services.NewReportService(store.Tasks, store.Technicians, store.Invoices)
	backupService := services.NewBackupService(
		store.IDs, store.Technicians, store.Tasks, store.Invoices, store.BotSettings, store.Notifications, logger,
	)

	runAuthRouter(api, controllers.NewAuthController(authService, logger))
	runDashboardRouter(secureGroup, controllers.NewDashboardController(dashboardService, logger))
	runTechnicianRouter(secureGroup, controllers.NewTechnicianController(technicianService, logger))
	runTaskRouter(secureGroup, controllers.NewTaskController(taskService, logger))
	runInvoiceRouter(secureGroup, controllers.NewInvoiceController(invoiceService, logger))
	runBotSettingsRouter(secureGroup, controllers.NewBotSettingsController(botSettingsService, logger))
	runNotificationRouter(secureGroup, controllers.NewNotificationController(notificationService, logger))
	runReportRouter(secureGroup, controllers.NewReportController(reportService, logger))
	runBackupRouter(secureGroup, controllers.NewBackupController(backupService, logger))

	logger.Info("маршруты панели собраны")
}
