package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-form/internal/dto"
	"employee-form/internal/services"
	apperrors "employee-form/pkg/errors"
	"employee-form/pkg/utils"
)

type employeeFormPage struct {
	CSRFToken    string
	User         string
	FullName     string
	Designations []dto.DesignationDTO
}

type PageController struct {
	designationService services.DesignationServiceInterface
	logger             *zap.Logger
}

func NewPageController(designationService services.DesignationServiceInterface, logger *zap.Logger) *PageController {
	return &PageController{designationService: designationService, logger: logger}
}

// EmployeeForm отдаёт страницу формы. Гостей отсекает LoginRequired.
func (c *PageController) EmployeeForm(ctx echo.Context) error {
	session, err := utils.GetSession(ctx)
	if err != nil {
		return ctx.Redirect(http.StatusFound, "/login")
	}

	designations, err := c.designationService.GetDesignations(ctx.Request().Context())
	if err != nil {
		// Страница всё равно нужна: клиент сам перезапросит список.
		c.logger.Warn("Страница формы отдана без должностей", zap.Error(err))
		designations = nil
	}

	return ctx.Render(http.StatusOK, "employeeform.html", employeeFormPage{
		CSRFToken:    session.CSRFToken,
		User:         session.User,
		FullName:     session.FullName,
		Designations: designations,
	})
}

func (c *PageController) Login(ctx echo.Context) error {
	if _, err := utils.GetSession(ctx); err == nil {
		return ctx.Redirect(http.StatusFound, "/employeeform")
	}
	if err := ctx.Render(http.StatusOK, "login.html", nil); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось отрисовать страницу", err, nil), c.logger)
	}
	return nil
}
