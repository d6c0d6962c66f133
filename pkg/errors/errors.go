package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

var (
	// Авторизация
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Общие
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError несёт HTTP-статус и сообщение для клиента, а внутреннюю
// причину оставляет для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// StatusFor переводит доменные ошибки в HTTP-статусы. Всё неизвестное
// считается внутренней ошибкой.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrUnauthorized), stderrors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case stderrors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
