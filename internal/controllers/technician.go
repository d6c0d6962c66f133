package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/services"
	apperrors "fieldops-system/pkg/errors"
	"fieldops-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TechnicianController struct {
	technicianService services.TechnicianServiceInterface
	logger            *zap.Logger
}

func NewTechnicianController(technicianService services.TechnicianServiceInterface, logger *zap.Logger) *TechnicianController {
	return &TechnicianController{technicianService: technicianService, logger: logger}
}

func (c *TechnicianController) GetTechnicians(ctx echo.Context) error {
	res, err := c.technicianService.GetTechnicians(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *TechnicianController) CreateTechnician(ctx echo.Context) error {
	var payload dto.CreateTechnicianDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	technician, err := c.technicianService.CreateTechnician(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, technician)
}

func (c *TechnicianController) UpdateTechnician(ctx echo.Context) error {
	// Нечисловой id неотличим от несуществующего - как и в панели.
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Technician not found", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var patch dto.UpdateTechnicianDTO
	if err := ctx.Bind(&patch); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&patch); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	technician, err := c.technicianService.UpdateTechnician(ctx.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Technician not found", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, technician)
}

func (c *TechnicianController) DeleteTechnician(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Technician not found", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	if err := c.technicianService.DeleteTechnician(ctx.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Technician not found", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Technician deleted successfully")
}
