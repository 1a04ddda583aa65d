package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brunoadrover/gestiontaller/internal/controllers"
)

func runReporteRouter(api *echo.Group, ctrl *controllers.ReportController) {
	api.GET("/reportes/historial", ctrl.GetHistorial)
}
