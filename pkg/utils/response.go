package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "employee-form/pkg/errors"
)

// FrappeResponse - конверт ответа whitelisted-методов Frappe: полезная нагрузка в поле message.
type FrappeResponse struct {
	Message interface{} `json:"message"`
}

// FrappeErrorResponse - ответ Frappe на исключение. Поля message в нём нет.
type FrappeErrorResponse struct {
	ExcType   string `json:"exc_type"`
	Exception string `json:"exception"`
}

func MessageResponse(ctx echo.Context, message interface{}, code int) error {
	return ctx.JSON(code, &FrappeResponse{Message: message})
}

// ErrorResponse переводит ошибку в ответ Frappe. Бизнес-ошибки уходят строкой в message
// со статусом 200, остальные - как исключение с exc_type.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var bizErr *apperrors.BusinessError
	if errors.As(err, &bizErr) {
		logger.Info("Отказ бизнес-логики", zap.String("message", bizErr.Message), zap.String("uri", c.Request().RequestURI))
		return MessageResponse(c, bizErr.Message, http.StatusOK)
	}

	var httpErr *apperrors.HttpError
	if !errors.As(err, &httpErr) {
		httpErr = apperrors.NewHttpError(http.StatusInternalServerError, "Internal Server Error", err, nil)
	}

	if httpErr.Err != nil {
		logger.Error("HTTP Error",
			zap.Int("code", httpErr.Code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
			zap.Any("context", httpErr.Context),
		)
	}

	return c.JSON(httpErr.Code, &FrappeErrorResponse{
		ExcType:   excType(httpErr),
		Exception: httpErr.Message,
	})
}

func excType(httpErr *apperrors.HttpError) string {
	if t, ok := httpErr.Context["exc_type"].(string); ok && t != "" {
		return t
	}
	switch {
	case errors.Is(httpErr.Err, apperrors.ErrCSRFToken):
		return "CSRFTokenError"
	case errors.Is(httpErr.Err, apperrors.ErrUnauthorized), errors.Is(httpErr.Err, apperrors.ErrSessionExpired):
		return "PermissionError"
	case errors.Is(httpErr.Err, apperrors.ErrInvalidCredentials):
		return "AuthenticationError"
	case httpErr.Code == http.StatusBadRequest:
		return "ValidationError"
	}
	return "Exception"
}
