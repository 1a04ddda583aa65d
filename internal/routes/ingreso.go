package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brunoadrover/gestiontaller/internal/controllers"
)

func runIngresoRouter(api *echo.Group, ctrl *controllers.IngresoController) {
	api.GET("/ingresos", ctrl.GetIngresos)
	api.GET("/ingresos/:id", ctrl.FindIngreso)
	api.POST("/ingresos", ctrl.CreateIngreso)
	api.PUT("/ingresos/:id", ctrl.UpdateIngreso)
	api.DELETE("/ingresos/:id", ctrl.DeleteIngreso)

	// El historial sólo crece o se corrige, no hay DELETE de acciones.
	api.POST("/ingresos/:id/acciones", ctrl.CreateAccion)
	api.PUT("/ingresos/:id/acciones/:accionId", ctrl.UpdateAccion)

	api.GET("/ingresos/:id/informe", ctrl.FindInforme)
	api.PUT("/ingresos/:id/informe", ctrl.UpsertInforme)
}
