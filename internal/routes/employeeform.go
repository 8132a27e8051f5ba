package routes

import (
	"github.com/labstack/echo/v4"

	"employee-form/internal/controllers"
	"employee-form/pkg/middleware"
)

const (
	PathCSRFToken       = "/frappe.sessions.get_csrf_token"
	PathGetDesignations = "/task_manager.services.employeeform.get_designations"
	PathAddEmployee     = "/task_manager.services.employeeform.add_employee"
)

func runEmployeeFormRouter(api *echo.Group, formCtrl *controllers.EmployeeFormController, authMW *middleware.AuthMiddleware) {
	api.GET(PathCSRFToken, formCtrl.GetCSRFToken, authMW.Auth)
	api.GET(PathGetDesignations, formCtrl.GetDesignations, authMW.Auth)
	api.POST(PathAddEmployee, formCtrl.AddEmployee, authMW.Auth)
}

func runPageRouter(e *echo.Echo, pageCtrl *controllers.PageController, authMW *middleware.AuthMiddleware) {
	e.GET("/login", pageCtrl.Login)
	e.GET("/employeeform", pageCtrl.EmployeeForm, authMW.LoginRequired)
}
