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

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
	logger         *zap.Logger
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService, logger: logger}
}

func (c *InvoiceController) GetInvoices(ctx echo.Context) error {
	res, err := c.invoiceService.GetInvoices(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, res)
}

func (c *InvoiceController) CreateInvoice(ctx echo.Context) error {
	var payload dto.CreateInvoiceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.invoiceService.CreateInvoice(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, invoice)
}

func (c *InvoiceController) UpdateInvoice(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Invoice not found", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	var patch dto.UpdateInvoiceDTO
	if err := ctx.Bind(&patch); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid data", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&patch); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	invoice, err := c.invoiceService.UpdateInvoice(ctx.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusNotFound, "Invoice not found", err, nil),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, invoice)
}
