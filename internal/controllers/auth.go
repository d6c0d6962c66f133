package controllers

import (
	"errors"
	"net/http"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/services"
	apperrors "fieldops-system/pkg/errors"
	"fieldops-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (c *AuthController) Login(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.authService.Login(reqCtx, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusUnauthorized, "Invalid credentials", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, res)
}
