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

// CSRFHeader - заголовок, в котором Frappe ждёт CSRF-токен.
const CSRFHeader = "X-Frappe-CSRF-Token"

// requestTimeout - секунды на обращение к хранилищу.
const requestTimeout = 5

type EmployeeFormController struct {
	authService        services.AuthServiceInterface
	designationService services.DesignationServiceInterface
	employeeService    services.EmployeeServiceInterface
	logger             *zap.Logger
}

func NewEmployeeFormController(
	authService services.AuthServiceInterface,
	designationService services.DesignationServiceInterface,
	employeeService services.EmployeeServiceInterface,
	logger *zap.Logger,
) *EmployeeFormController {
	return &EmployeeFormController{
		authService:        authService,
		designationService: designationService,
		employeeService:    employeeService,
		logger:             logger,
	}
}

// GetCSRFToken - frappe.sessions.get_csrf_token.
func (c *EmployeeFormController) GetCSRFToken(ctx echo.Context) error {
	session, err := utils.GetSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusForbidden, "Not permitted", err, nil), c.logger)
	}
	return utils.MessageResponse(ctx, session.CSRFToken, http.StatusOK)
}

// GetDesignations - task_manager.services.employeeform.get_designations.
func (c *EmployeeFormController) GetDesignations(ctx echo.Context) error {
	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := c.designationService.GetDesignations(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, result, http.StatusOK)
}

// AddEmployee - task_manager.services.employeeform.add_employee.
func (c *EmployeeFormController) AddEmployee(ctx echo.Context) error {
	session, err := utils.GetSession(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusForbidden, "Not permitted", err, nil), c.logger)
	}
	if err := c.authService.ValidateCSRF(session, ctx.Request().Header.Get(CSRFHeader)); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var d dto.AddEmployeeDTO
	if err := ctx.Bind(&d); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&d); err != nil {
		c.logger.Info("AddEmployee: данные не прошли валидацию", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBusinessError(err, "Employee name and designation are required"), c.logger)
	}

	reqCtx, cancel := utils.ContextWithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := c.employeeService.AddEmployee(reqCtx, d, session)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.MessageResponse(ctx, result, http.StatusOK)
}
