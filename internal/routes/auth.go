package routes

import (
	"github.com/labstack/echo/v4"

	"employee-form/internal/controllers"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController) {
	api.POST("/login", authCtrl.Login)
	api.GET("/logout", authCtrl.Logout)
	api.POST("/logout", authCtrl.Logout)
}
