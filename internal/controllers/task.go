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

type TaskController struct {
	taskService services.TaskServiceInterface
	logger      *zap.Logger
}

func NewTaskController(taskService services.TaskServiceInterface, logger *zap.Logger) *TaskController {
	return &TaskController{taskService: taskService, logger: logger}
}

func (c *TaskController) GetTasks(ctx echo.Context) error {
	res, err := c.taskService.GetTasks(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *TaskController) CreateTask(ctx echo.Context) error {
	var payload dto.CreateTaskDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	task, err := c.taskService.CreateTask(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, task)
}

func (c *TaskController) UpdateTask(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Task not found", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var patch dto.UpdateTaskDTO
	if err := ctx.Bind(&patch); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&patch); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	task, err := c.taskService.UpdateTask(ctx.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Task not found", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, task)
}

func (c *TaskController) DeleteTask(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Task not found", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	if err := c.taskService.DeleteTask(ctx.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Task not found", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, http.StatusOK, "Task deleted successfully")
}
