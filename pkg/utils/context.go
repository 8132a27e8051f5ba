package utils

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"employee-form/internal/entities"
	apperrors "employee-form/pkg/errors"
)

const sessionKey = "session"

func ContextWithTimeout(ctx echo.Context, timeout int) (context.Context, context.CancelFunc) {
	reqCtx := ctx.Request().Context()
	return context.WithTimeout(reqCtx, time.Duration(timeout)*time.Second)
}

func SetSession(c echo.Context, session *entities.Session) {
	c.Set(sessionKey, session)
}

// GetSession возвращает сессию, положенную мидлвэром. Гость - ErrUnauthorized.
func GetSession(c echo.Context) (*entities.Session, error) {
	session, ok := c.Get(sessionKey).(*entities.Session)
	if !ok || session == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return session, nil
}
