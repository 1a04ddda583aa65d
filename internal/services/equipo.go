package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/entities"
	"github.com/brunoadrover/gestiontaller/internal/repositories"
	"github.com/brunoadrover/gestiontaller/pkg/types"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

type EquipoService struct {
	equipoRepository repositories.EquipoRepositoryInterface
	logger           *zap.Logger
}

func NewEquipoService(equipoRepository repositories.EquipoRepositoryInterface, logger *zap.Logger) *EquipoService {
	return &EquipoService{
		equipoRepository: equipoRepository,
		logger:           logger,
	}
}

func (s *EquipoService) GetEquipos(ctx context.Context, filter types.Filter) ([]dto.EquipoDTO, uint64, error) {
	equipos, total, err := s.equipoRepository.GetEquipos(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EquipoDTO, 0, len(equipos))
	for i := range equipos {
		out = append(out, equipoADTO(&equipos[i]))
	}
	return out, total, nil
}

func (s *EquipoService) FindEquipo(ctx context.Context, id string) (*dto.EquipoDTO, error) {
	equipo, err := s.equipoRepository.FindEquipo(ctx, id)
	if err != nil {
		return nil, err
	}
	out := equipoADTO(equipo)
	return &out, nil
}

func (s *EquipoService) CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (*dto.EquipoDTO, error) {
	equipo := entities.Equipo{
		ID:                strings.ToUpper(strings.TrimSpace(payload.ID)),
		Tipo:              payload.Tipo,
		Marca:             payload.Marca,
		Modelo:            payload.Modelo,
		Horas:             payload.Horas,
		ValorNuevo:        payload.ValorNuevo,
		Demerito:          payload.Demerito,
		ComentarioGeneral: payload.ComentarioGral,
	}

	if err := s.equipoRepository.CreateEquipo(ctx, equipo); err != nil {
		s.logger.Error("error creando equipo", zap.String("interno", equipo.ID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipo creado", zap.String("interno", equipo.ID))

	return s.FindEquipo(ctx, equipo.ID)
}

func (s *EquipoService) UpdateEquipo(ctx context.Context, id string, payload dto.UpdateEquipoDTO) (*dto.EquipoDTO, error) {
	if err := s.equipoRepository.UpdateEquipo(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindEquipo(ctx, id)
}

func (s *EquipoService) DeleteEquipo(ctx context.Context, id string) error {
	if err := s.equipoRepository.DeleteEquipo(ctx, id); err != nil {
		return err
	}
	s.logger.Info("equipo dado de baja, sus ingresos quedan huérfanos", zap.String("interno", id))
	return nil
}

func equipoADTO(e *entities.Equipo) dto.EquipoDTO {
	return dto.EquipoDTO{
		ID:             e.ID,
		Tipo:           e.Tipo,
		Marca:          e.Marca,
		Modelo:         e.Modelo,
		Horas:          e.Horas,
		ValorNuevo:     e.ValorNuevo,
		Demerito:       e.Demerito,
		ComentarioGral: e.ComentarioGeneral,
		CreatedAt:      utils.FormatearFecha(e.CreatedAt),
		UpdatedAt:      utils.FormatearFecha(e.UpdatedAt),
	}
}

func equipoACorto(e *entities.Equipo) *dto.ShortEquipoDTO {
	if e == nil {
		return nil
	}
	return &dto.ShortEquipoDTO{ID: e.ID, Tipo: e.Tipo, Marca: e.Marca, Modelo: e.Modelo}
}
