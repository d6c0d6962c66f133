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

type BackupController struct {
	backupService services.BackupServiceInterface
	logger        *zap.Logger
}

func NewBackupController(backupService services.BackupServiceInterface, logger *zap.Logger) *BackupController {
	return &BackupController{backupService: backupService, logger: logger}
}

func (c *BackupController) GetBackup(ctx echo.Context) error {
	snapshot, err := c.backupService.Snapshot(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, snapshot)
}

func (c *BackupController) RestoreBackup(ctx echo.Context) error {
	var snapshot dto.BackupDTO
	if err := ctx.Bind(&snapshot); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil), c.logger)
	}
	if err := c.backupService.Restore(ctx.Request().Context(), snapshot); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Backup restored successfully")
}
