package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brunoadrover/gestiontaller/internal/controllers"
)

func runEquipoRouter(api *echo.Group, ctrl *controllers.EquipoController) {
	api.GET("/equipos", ctrl.GetEquipos)
	api.GET("/equipos/:id", ctrl.FindEquipo)
	api.POST("/equipos", ctrl.CreateEquipo)
	api.PUT("/equipos/:id", ctrl.UpdateEquipo)
	api.DELETE("/equipos/:id", ctrl.DeleteEquipo)
}
