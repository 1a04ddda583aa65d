package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/services"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

// IngresoController atiende los ingresos, sus acciones y el informe técnico.
// Toda mutación invalida el cache del dashboard.
type IngresoController struct {
	ingresoService   *services.IngresoService
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewIngresoController(
	ingresoService *services.IngresoService,
	dashboardService *services.DashboardService,
	logger *zap.Logger,
) *IngresoController {
	return &IngresoController{
		ingresoService:   ingresoService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *IngresoController) GetIngresos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	ingresos, total, err := c.ingresoService.GetIngresos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, ingresos, "Historial de ingresos obtenido", http.StatusOK, total)
}

func (c *IngresoController) FindIngreso(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	res, err := c.ingresoService.FindIngreso(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Ingreso encontrado", http.StatusOK)
}

func (c *IngresoController) CreateIngreso(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateIngresoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ingresoService.CreateIngreso(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.dashboardService.InvalidateCache(reqCtx)
	return utils.SuccessResponse(ctx, res, "Ingreso registrado", http.StatusCreated)
}

func (c *IngresoController) UpdateIngreso(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	var payload dto.UpdateIngresoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ingresoService.UpdateIngreso(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.dashboardService.InvalidateCache(reqCtx)
	return utils.SuccessResponse(ctx, res, "Ingreso actualizado", http.StatusOK)
}

func (c *IngresoController) DeleteIngreso(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	if err := c.ingresoService.DeleteIngreso(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.dashboardService.InvalidateCache(reqCtx)
	return utils.SuccessResponse(ctx, nil, "Ingreso borrado", http.StatusOK)
}

func (c *IngresoController) CreateAccion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	ingresoID := ctx.Param("id")

	var payload dto.CreateAccionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ingresoService.CreateAccion(reqCtx, ingresoID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.dashboardService.InvalidateCache(reqCtx)
	return utils.SuccessResponse(ctx, res, "Acción agregada al historial", http.StatusCreated)
}

func (c *IngresoController) UpdateAccion(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	ingresoID := ctx.Param("id")
	accionID := ctx.Param("accionId")

	var payload dto.UpdateAccionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ingresoService.UpdateAccion(reqCtx, ingresoID, accionID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.dashboardService.InvalidateCache(reqCtx)
	return utils.SuccessResponse(ctx, res, "Acción corregida", http.StatusOK)
}

func (c *IngresoController) FindInforme(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	ingresoID := ctx.Param("id")

	res, err := c.ingresoService.FindInforme(reqCtx, ingresoID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Informe técnico obtenido", http.StatusOK)
}

func (c *IngresoController) UpsertInforme(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	ingresoID := ctx.Param("id")

	var payload dto.UpsertInformeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ingresoService.UpsertInforme(reqCtx, ingresoID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Informe técnico guardado", http.StatusOK)
}
