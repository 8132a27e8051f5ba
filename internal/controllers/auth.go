package controllers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-form/internal/dto"
	"employee-form/internal/services"
	apperrors "employee-form/pkg/errors"
	"employee-form/pkg/middleware"
	"employee-form/pkg/utils"
)

// csrfCookie - cookie с CSRF-токеном, доступная скриптам страницы.
const csrfCookie = "csrf_token"

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Login - /api/method/login, принимает usr/pwd в JSON или форме.
func (c *AuthController) Login(ctx echo.Context) error {
	var d dto.LoginDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusUnauthorized, "Invalid login credentials", apperrors.ErrInvalidCredentials, nil), c.logger)
	}

	session, err := c.authService.Login(ctx.Request().Context(), d)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.SID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	ctx.SetCookie(&http.Cookie{
		Name:     csrfCookie,
		Value:    url.QueryEscape(session.CSRFToken),
		Path:     "/",
		Expires:  session.ExpiresAt,
		SameSite: http.SameSiteStrictMode,
	})

	return ctx.JSON(http.StatusOK, &dto.LoginResponseDTO{Message: "Logged In", FullName: session.FullName})
}

// Logout закрывает сессию; гостю просто отвечает успехом.
func (c *AuthController) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(middleware.SessionCookie); err == nil {
		if err := c.authService.Logout(ctx.Request().Context(), cookie.Value); err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось закрыть сессию", err, nil), c.logger)
		}
	}

	expired := time.Unix(0, 0)
	ctx.SetCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "Guest", Path: "/", Expires: expired, HttpOnly: true})
	ctx.SetCookie(&http.Cookie{Name: csrfCookie, Value: "", Path: "/", Expires: expired})
	return utils.MessageResponse(ctx, struct{}{}, http.StatusOK)
}
