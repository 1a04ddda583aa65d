package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/engine"
	"github.com/brunoadrover/gestiontaller/internal/repositories"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

// OpcionesReporte acota el historial exportado.
type OpcionesReporte struct {
	// Sector vacío = todos. Valores: pesados, camiones, livianos, otros.
	Sector string
	// SoloOperativos deja únicamente los ingresos cuyo estado derivado es
	// operativo (el reporte de "devueltos a obra" con su pérdida).
	SoloOperativos bool
}

type ReporteServiceInterface interface {
	GetHistorial(ctx context.Context, opciones OpcionesReporte) (*dto.ReporteHistorialDTO, error)
}

type reporteService struct {
	ingresoRepository repositories.IngresoRepositoryInterface
	equipoRepository  repositories.EquipoRepositoryInterface
	classifier        *engine.Classifier
	clock             Clock
	logger            *zap.Logger
}

func NewReporteService(
	ingresoRepository repositories.IngresoRepositoryInterface,
	equipoRepository repositories.EquipoRepositoryInterface,
	classifier *engine.Classifier,
	clock Clock,
	logger *zap.Logger,
) ReporteServiceInterface {
	return &reporteService{
		ingresoRepository: ingresoRepository,
		equipoRepository:  equipoRepository,
		classifier:        classifier,
		clock:             clock,
		logger:            logger,
	}
}

func (s *reporteService) GetHistorial(ctx context.Context, opciones OpcionesReporte) (*dto.ReporteHistorialDTO, error) {
	ingresos, err := s.ingresoRepository.GetIngresosConAcciones(ctx)
	if err != nil {
		return nil, err
	}
	equipos, err := s.equipoRepository.GetEquiposIndex(ctx)
	if err != nil {
		return nil, err
	}

	hoy := s.clock.Now()

	// El resumen es siempre sobre la flota entera, los filtros sólo acotan
	// las filas.
	stats, err := s.classifier.Aggregate(ingresos, equipos, hoy)
	if err != nil {
		return nil, errorDeFecha(err)
	}

	filas := make([]dto.FilaHistorialDTO, 0, len(ingresos))
	for i := range ingresos {
		ingreso := &ingresos[i]
		equipo := equipos[ingreso.EquipoID]

		sector := engine.SectorDe(ingreso, equipo)
		if opciones.Sector != "" && string(sector) != opciones.Sector {
			continue
		}

		resultado, err := s.classifier.Classify(ingreso, hoy)
		if err != nil {
			return nil, errorDeFecha(err)
		}
		if opciones.SoloOperativos && resultado.Estado != engine.EstadoOperativo {
			continue
		}

		etapas, err := s.classifier.DuracionesEtapas(ingreso, hoy)
		if err != nil {
			return nil, errorDeFecha(err)
		}

		fila := dto.FilaHistorialDTO{
			IngresoID:       ingreso.ID,
			EquipoID:        ingreso.EquipoID,
			FechaIngreso:    ingreso.FechaIngreso,
			ObraAsignada:    utils.SafeDeref(ingreso.ObraAsignada),
			InformeFallas:   ingreso.InformeFallas,
			Estado:          resultado.Estado.Etiqueta(),
			DiasTotal:       resultado.DiasTotal,
			PerdidaEstimada: engine.EstimarPerdida(resultado.DiasTotal, equipo),
			Retrabajo:       s.classifier.HasRetrabajo(ingreso.Acciones),
			Sector:          string(sector),
		}
		if equipo != nil {
			fila.TipoEquipo = equipo.Tipo
			fila.Marca = equipo.Marca
			fila.Modelo = equipo.Modelo
		}
		if n := len(ingreso.Acciones); n > 0 {
			fila.UltimaAccion = ingreso.Acciones[n-1].Descripcion
		}

		fila.Etapas = make([]dto.EtapaDTO, 0, len(etapas))
		for _, etapa := range etapas {
			fila.Etapas = append(fila.Etapas, dto.EtapaDTO{
				Descripcion:    etapa.Accion.Descripcion,
				FechaAccion:    etapa.Accion.FechaAccion,
				DiasEtapa:      etapa.DiasEtapa,
				DiasAcumulados: etapa.DiasAcumulados,
			})
		}

		filas = append(filas, fila)
	}

	return &dto.ReporteHistorialDTO{
		Filas: filas,
		Resumen: &dto.DashboardDTO{
			Fecha: engine.FormatFecha(hoy),
			Stats: stats,
		},
	}, nil
}
