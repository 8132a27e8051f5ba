package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-form/internal/services"
	apperrors "employee-form/pkg/errors"
	"employee-form/pkg/utils"
)

// SessionCookie - имя cookie сессии, как во Frappe.
const SessionCookie = "sid"

type AuthMiddleware struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthMiddleware(authService services.AuthServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// LoadSession кладёт сессию в контекст, если cookie sid указывает на живую сессию.
// Гостя не отклоняет: это решают Auth и LoginRequired.
func (m *AuthMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			return next(c)
		}

		session, err := m.authService.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				m.logger.Error("AuthMiddleware: ошибка чтения сессии", zap.Error(err))
			}
			return next(c)
		}

		utils.SetSession(c, session)
		return next(c)
	}
}

// Auth - для API: гость получает 403 PermissionError.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := utils.GetSession(c); err != nil {
			m.logger.Warn("AuthMiddleware: запрос без сессии", zap.String("uri", c.Request().RequestURI))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden, "Not permitted", err, nil), m.logger)
		}
		return next(c)
	}
}

// LoginRequired - для страниц: гость уходит на /login.
func (m *AuthMiddleware) LoginRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := utils.GetSession(c); err != nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
