package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fieldops-system/internal/services"
	apperrors "fieldops-system/pkg/errors"
	"fieldops-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationController(notificationService services.NotificationServiceInterface, logger *zap.Logger) *NotificationController {
	return &NotificationController{notificationService: notificationService, logger: logger}
}

func (c *NotificationController) GetNotifications(ctx echo.Context) error {
	res, err := c.notificationService.GetNotifications(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *NotificationController) GetUnreadNotifications(ctx echo.Context) error {
	res, err := c.notificationService.GetUnreadNotifications(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Notification not found", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	if err := c.notificationService.MarkAsRead(ctx.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Notification not found", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Notification marked as read")
}
