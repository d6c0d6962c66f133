package middleware

import (
	"crypto/subtle"
	"net/http"

	"fieldops-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	token  string
	logger *zap.Logger
}

func NewAuthMiddleware(token string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{token: token, logger: logger}
}

// Auth пропускает запрос только с заголовком "Authorization: Bearer <token>",
// где token совпадает с настроенным статическим токеном панели.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		expected := "Bearer " + m.token

		if authHeader == "" || subtle.ConstantTimeCompare([]byte(authHeader), []byte(expected)) != 1 {
			m.logger.Warn("отклонён неавторизованный запрос",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
			)
			return utils.MessageResponse(c, http.StatusUnauthorized, "Unauthorized")
		}

		return next(c)
	}
}
