package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/engine"
	"github.com/brunoadrover/gestiontaller/internal/entities"
	"github.com/brunoadrover/gestiontaller/internal/repositories"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/types"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

// IngresoService junta la persistencia con el motor de clasificación: todo lo
// derivado (estado, días, pérdida, etapas) se calcula al servir, nunca se
// guarda.
type IngresoService struct {
	ingresoRepository repositories.IngresoRepositoryInterface
	equipoRepository  repositories.EquipoRepositoryInterface
	informeRepository repositories.InformeRepositoryInterface
	classifier        *engine.Classifier
	clock             Clock
	logger            *zap.Logger
}

func NewIngresoService(
	ingresoRepository repositories.IngresoRepositoryInterface,
	equipoRepository repositories.EquipoRepositoryInterface,
	informeRepository repositories.InformeRepositoryInterface,
	classifier *engine.Classifier,
	clock Clock,
	logger *zap.Logger,
) *IngresoService {
	return &IngresoService{
		ingresoRepository: ingresoRepository,
		equipoRepository:  equipoRepository,
		informeRepository: informeRepository,
		classifier:        classifier,
		clock:             clock,
		logger:            logger,
	}
}

func (s *IngresoService) GetIngresos(ctx context.Context, filter types.Filter) ([]dto.IngresoListDTO, uint64, error) {
	ingresos, total, err := s.ingresoRepository.GetIngresos(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	equipos, err := s.equipoRepository.GetEquiposIndex(ctx)
	if err != nil {
		return nil, 0, err
	}

	hoy := s.clock.Now()
	out := make([]dto.IngresoListDTO, 0, len(ingresos))
	for i := range ingresos {
		ingreso := &ingresos[i]
		resultado, err := s.classifier.Classify(ingreso, hoy)
		if err != nil {
			return nil, 0, errorDeFecha(err)
		}

		item := dto.IngresoListDTO{
			ID:            ingreso.ID,
			Equipo:        equipoACorto(equipos[ingreso.EquipoID]),
			EquipoID:      ingreso.EquipoID,
			FechaIngreso:  ingreso.FechaIngreso,
			InformeFallas: ingreso.InformeFallas,
			Estado:        resultado.Estado.Etiqueta(),
			DiasTotal:     resultado.DiasTotal,
		}
		if n := len(ingreso.Acciones); n > 0 {
			item.UltimaAccion = ingreso.Acciones[n-1].Descripcion
		}
		out = append(out, item)
	}
	return out, total, nil
}

func (s *IngresoService) FindIngreso(ctx context.Context, id string) (*dto.IngresoDTO, error) {
	ingreso, err := s.ingresoRepository.FindIngreso(ctx, id)
	if err != nil {
		return nil, err
	}

	equipo, err := s.equipoRepository.FindEquipo(ctx, ingreso.EquipoID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hoy := s.clock.Now()
	resultado, err := s.classifier.Classify(ingreso, hoy)
	if err != nil {
		return nil, errorDeFecha(err)
	}
	etapas, err := s.classifier.DuracionesEtapas(ingreso, hoy)
	if err != nil {
		return nil, errorDeFecha(err)
	}

	out := dto.IngresoDTO{
		ID:            ingreso.ID,
		Equipo:        equipoACorto(equipo),
		EquipoID:      ingreso.EquipoID,
		FechaIngreso:  ingreso.FechaIngreso,
		ObraAsignada:  ingreso.ObraAsignada,
		InformeFallas: ingreso.InformeFallas,
		Observaciones: ingreso.Observaciones,
		FechaSalida:   ingreso.FechaSalida,

		Estado:          resultado.Estado.Etiqueta(),
		DiasTotal:       resultado.DiasTotal,
		PerdidaEstimada: engine.EstimarPerdida(resultado.DiasTotal, equipo),
		Retrabajo:       s.classifier.HasRetrabajo(ingreso.Acciones),
		Sector:          string(engine.SectorDe(ingreso, equipo)),

		CreatedAt: utils.FormatearFecha(ingreso.CreatedAt),
		UpdatedAt: utils.FormatearFecha(ingreso.UpdatedAt),
	}

	out.Acciones = make([]dto.AccionDTO, 0, len(ingreso.Acciones))
	for _, accion := range ingreso.Acciones {
		out.Acciones = append(out.Acciones, dto.AccionDTO{
			ID:          accion.ID,
			Descripcion: accion.Descripcion,
			FechaAccion: accion.FechaAccion,
			Responsable: accion.Responsable,
		})
	}

	out.Etapas = make([]dto.EtapaDTO, 0, len(etapas))
	for _, etapa := range etapas {
		out.Etapas = append(out.Etapas, dto.EtapaDTO{
			Descripcion:    etapa.Accion.Descripcion,
			FechaAccion:    etapa.Accion.FechaAccion,
			DiasEtapa:      etapa.DiasEtapa,
			DiasAcumulados: etapa.DiasAcumulados,
		})
	}

	return &out, nil
}

func (s *IngresoService) CreateIngreso(ctx context.Context, payload dto.CreateIngresoDTO) (*dto.IngresoDTO, error) {
	// El interno tiene que existir al momento del alta. Después puede
	// borrarse del catálogo y el ingreso queda huérfano, eso es aceptado.
	if _, err := s.equipoRepository.FindEquipo(ctx, payload.EquipoID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusBadRequest,
				"el interno no existe en el catálogo", err,
				map[string]interface{}{"equipo_id": payload.EquipoID})
		}
		return nil, err
	}

	ingreso := entities.Ingreso{
		ID:            uuid.NewString(),
		EquipoID:      payload.EquipoID,
		FechaIngreso:  payload.FechaIngreso,
		ObraAsignada:  payload.ObraAsignada,
		InformeFallas: payload.InformeFallas,
		Observaciones: payload.Observaciones,
		FechaSalida:   payload.FechaSalida,
	}
	primera := entities.Accion{
		ID:          uuid.NewString(),
		IngresoID:   ingreso.ID,
		Descripcion: payload.AccionInicial.Descripcion,
		FechaAccion: payload.AccionInicial.FechaAccion,
		Responsable: payload.AccionInicial.Responsable,
	}

	if err := s.ingresoRepository.CreateIngreso(ctx, ingreso, primera); err != nil {
		s.logger.Error("error creando ingreso", zap.String("interno", ingreso.EquipoID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("ingreso creado",
		zap.String("ingreso_id", ingreso.ID),
		zap.String("interno", ingreso.EquipoID))

	return s.FindIngreso(ctx, ingreso.ID)
}

func (s *IngresoService) UpdateIngreso(ctx context.Context, id string, payload dto.UpdateIngresoDTO) (*dto.IngresoDTO, error) {
	if err := s.ingresoRepository.UpdateIngreso(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindIngreso(ctx, id)
}

func (s *IngresoService) DeleteIngreso(ctx context.Context, id string) error {
	if err := s.ingresoRepository.DeleteIngreso(ctx, id); err != nil {
		return err
	}
	s.logger.Info("ingreso borrado con sus acciones", zap.String("ingreso_id", id))
	return nil
}

func (s *IngresoService) CreateAccion(ctx context.Context, ingresoID string, payload dto.CreateAccionDTO) (*dto.IngresoDTO, error) {
	accion := entities.Accion{
		ID:          uuid.NewString(),
		IngresoID:   ingresoID,
		Descripcion: payload.Descripcion,
		FechaAccion: payload.FechaAccion,
		Responsable: payload.Responsable,
	}
	if err := s.ingresoRepository.CreateAccion(ctx, accion); err != nil {
		return nil, err
	}
	return s.FindIngreso(ctx, ingresoID)
}

func (s *IngresoService) UpdateAccion(ctx context.Context, ingresoID, accionID string, payload dto.UpdateAccionDTO) (*dto.IngresoDTO, error) {
	if err := s.ingresoRepository.UpdateAccion(ctx, ingresoID, accionID, payload); err != nil {
		return nil, err
	}
	return s.FindIngreso(ctx, ingresoID)
}

func (s *IngresoService) FindInforme(ctx context.Context, ingresoID string) (*dto.InformeDTO, error) {
	informe, err := s.informeRepository.FindInforme(ctx, ingresoID)
	if err != nil {
		return nil, err
	}
	return informeADTO(informe), nil
}

func (s *IngresoService) UpsertInforme(ctx context.Context, ingresoID string, payload dto.UpsertInformeDTO) (*dto.InformeDTO, error) {
	if _, err := s.ingresoRepository.FindIngreso(ctx, ingresoID); err != nil {
		return nil, err
	}

	informe := entities.InformeTaller{
		IngresoID:              ingresoID,
		Motor:                  payload.Motor,
		SistemaHidraulico:      payload.SistemaHidraulico,
		SistemaElectrico:       payload.SistemaElectrico,
		SistemaNeumatico:       payload.SistemaNeumatico,
		Estructura:             payload.Estructura,
		Cabina:                 payload.Cabina,
		TrenRodante:            payload.TrenRodante,
		ElementosDesgaste:      payload.ElementosDesgaste,
		ComponentesEspecificos: payload.ComponentesEspecificos,
		Observaciones:          payload.Observaciones,
	}
	if err := s.informeRepository.UpsertInforme(ctx, informe); err != nil {
		return nil, err
	}
	return s.FindInforme(ctx, ingresoID)
}

func informeADTO(inf *entities.InformeTaller) *dto.InformeDTO {
	return &dto.InformeDTO{
		IngresoID:              inf.IngresoID,
		Motor:                  inf.Motor,
		SistemaHidraulico:      inf.SistemaHidraulico,
		SistemaElectrico:       inf.SistemaElectrico,
		SistemaNeumatico:       inf.SistemaNeumatico,
		Estructura:             inf.Estructura,
		Cabina:                 inf.Cabina,
		TrenRodante:            inf.TrenRodante,
		ElementosDesgaste:      inf.ElementosDesgaste,
		ComponentesEspecificos: inf.ComponentesEspecificos,
		Observaciones:          inf.Observaciones,
		UpdatedAt:              utils.FormatearFecha(inf.UpdatedAt),
	}
}

// errorDeFecha convierte un error del motor en una respuesta 422: el dato
// guardado es ilegible, no es culpa del cliente ni un error del servidor.
func errorDeFecha(err error) error {
	var malformada *engine.MalformedDateError
	if errors.As(err, &malformada) {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity,
			"hay una fecha ilegible en el historial", err,
			map[string]interface{}{
				"ingreso_id": malformada.IngresoID,
				"campo":      malformada.Campo,
				"valor":      malformada.Valor,
			})
	}
	return err
}
