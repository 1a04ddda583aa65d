package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brunoadrover/gestiontaller/internal/controllers"
)

func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
}
