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

type EquipoController struct {
	equipoService *services.EquipoService
	logger        *zap.Logger
}

func NewEquipoController(equipoService *services.EquipoService, logger *zap.Logger) *EquipoController {
	return &EquipoController{
		equipoService: equipoService,
		logger:        logger,
	}
}

func (c *EquipoController) GetEquipos(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	equipos, total, err := c.equipoService.GetEquipos(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipos, "Catálogo de equipos obtenido", http.StatusOK, total)
}

func (c *EquipoController) FindEquipo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	res, err := c.equipoService.FindEquipo(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipo encontrado", http.StatusOK)
}

func (c *EquipoController) CreateEquipo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipoService.CreateEquipo(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipo dado de alta", http.StatusCreated)
}

func (c *EquipoController) UpdateEquipo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	var payload dto.UpdateEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipoService.UpdateEquipo(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Equipo actualizado", http.StatusOK)
}

func (c *EquipoController) DeleteEquipo(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	if err := c.equipoService.DeleteEquipo(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Equipo dado de baja", http.StatusOK)
}
