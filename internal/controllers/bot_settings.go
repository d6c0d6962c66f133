package controllers

import (
	"net/http"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/services"
	apperrors "fieldops-system/pkg/errors"
	"fieldops-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type BotSettingsController struct {
	botSettingsService services.BotSettingsServiceInterface
	logger             *zap.Logger
}

func NewBotSettingsController(botSettingsService services.BotSettingsServiceInterface, logger *zap.Logger) *BotSettingsController {
	return &BotSettingsController{botSettingsService: botSettingsService, logger: logger}
}

func (c *BotSettingsController) GetBotSettings(ctx echo.Context) error {
	settings, err := c.botSettingsService.GetBotSettings(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, settings)
}

func (c *BotSettingsController) UpdateBotSettings(ctx echo.Context) error {
	var payload dto.UpdateBotSettingsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	settings, err := c.botSettingsService.UpdateBotSettings(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, settings)
}
