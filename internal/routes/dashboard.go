package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brunoadrover/gestiontaller/internal/controllers"
)

func runDashboardRouter(api *echo.Group, ctrl *controllers.DashboardController) {
	api.GET("/dashboard", ctrl.GetDashboard)
}
