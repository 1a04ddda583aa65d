package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/services"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.dashboardService.GetDashboard(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Indicadores del taller obtenidos", http.StatusOK)
}
