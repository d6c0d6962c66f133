package utils

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "fieldops-system/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Формат ошибок фиксирован контрактом API: {"message": ...} и, для ошибок
// валидации при создании, дополнительно {"errors": [...]}.

type MessageBody struct {
	Message string `json:"message"`
}

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ValidationErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// MessageResponse отправляет простой ответ вида {"message": ...}.
func MessageResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, MessageBody{Message: message})
}

// ErrorResponse переводит любую ошибку в ответ контрактного формата и пишет
// подробности в лог. Клиент видит только статус и короткое сообщение.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		logFields := []zap.Field{
			zap.Int("code", httpErr.Code),
			zap.Error(httpErr.Err),
		}
		if httpErr.Details != nil {
			logFields = append(logFields, zap.Any("details", httpErr.Details))
		}
		logger.Warn(httpErr.Message, logFields...)
		return MessageResponse(ctx, httpErr.Code, httpErr.Message)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		body := ValidationErrorBody{Message: "Invalid data"}
		for _, fe := range validationErrs {
			body.Errors = append(body.Errors, FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()),
			})
		}
		logger.Debug("ошибка валидации запроса", zap.Error(err))
		return ctx.JSON(http.StatusBadRequest, body)
	}

	code := apperrors.StatusFor(err)
	message := "Internal server error"
	switch code {
	case http.StatusNotFound:
		message = "Not found"
	case http.StatusUnauthorized:
		message = "Unauthorized"
	case http.StatusBadRequest:
		message = "Invalid data"
	}

	if code == http.StatusInternalServerError {
		logger.Error("внутренняя ошибка", zap.Error(err))
	} else {
		logger.Warn("ошибка обработки запроса", zap.Int("code", code), zap.Error(err))
	}
	return MessageResponse(ctx, code, message)
}
