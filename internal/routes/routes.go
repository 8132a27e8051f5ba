package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-form/internal/controllers"
	"employee-form/internal/listeners"
	"employee-form/internal/repositories"
	"employee-form/internal/services"
	"employee-form/pkg/config"
	"employee-form/pkg/customvalidator"
	"employee-form/pkg/eventbus"
	"employee-form/pkg/middleware"
	"employee-form/pkg/utils"
)

type Loggers struct {
	Main     *zap.Logger
	Auth     *zap.Logger
	Employee *zap.Logger
	Audit    *zap.Logger
}

// NopLoggers - набор логгеров-пустышек для тестов.
func NopLoggers() *Loggers {
	nop := zap.NewNop()
	return &Loggers{Main: nop, Auth: nop, Employee: nop, Audit: nop}
}

func InitRouter(e *echo.Echo, cache repositories.CacheRepositoryInterface, bus *eventbus.Bus, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	e.Validator = utils.NewValidator(customvalidator.New())
	e.Renderer = controllers.NewTemplateRenderer()

	// --- 1. РЕПОЗИТОРИИ ---
	sessionRepo := repositories.NewSessionRepository(cache)
	designationRepo := repositories.NewDesignationRepository(cache)
	employeeRepo := repositories.NewEmployeeRepository(cache, loggers.Employee)

	// --- 2. СЕРВИСЫ ---
	authService := services.NewAuthService(sessionRepo, &cfg.Site, loggers.Auth)
	designationService := services.NewDesignationService(designationRepo, loggers.Main)
	employeeService := services.NewEmployeeService(employeeRepo, designationRepo, bus, loggers.Employee)

	listeners.NewAuditListener(loggers.Audit).Register(bus)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authMW := middleware.NewAuthMiddleware(authService, loggers.Auth)
	authCtrl := controllers.NewAuthController(authService, loggers.Auth)
	pageCtrl := controllers.NewPageController(designationService, loggers.Main)
	formCtrl := controllers.NewEmployeeFormController(authService, designationService, employeeService, loggers.Employee)

	// --- 4. РОУТЕРЫ ---
	e.Use(authMW.LoadSession)

	runPageRouter(e, pageCtrl, authMW)
	api := e.Group("/api/method")
	runAuthRouter(api, authCtrl)
	runEmployeeFormRouter(api, formCtrl, authMW)

	loggers.Main.Info("InitRouter: Маршруты созданы")
}
