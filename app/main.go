package main

import (
	"context"
	"net/http"

	"fieldops-system/internal/repositories"
	"fieldops-system/internal/routes"
	"fieldops-system/pkg/config"
	apperrors "fieldops-system/pkg/errors"
	applogger "fieldops-system/pkg/logger"
	"fieldops-system/pkg/utils"
	"fieldops-system/pkg/validation"
	"fieldops-system/seeders"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	e.HideBanner = true

	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("паника в обработчике запроса",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	e.Validator = validation.New()

	store := repositories.NewStore()
	if err := seeders.Run(context.Background(), store, cfg, logger); err != nil {
		logger.Fatal("ошибка выполнения сидеров", zap.Error(err))
	}

	routes.InitRouter(e, store, cfg, logger)

	logger.Info("сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("ошибка запуска сервера", zap.Error(err))
	}
}
