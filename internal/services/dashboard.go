package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/engine"
	"github.com/brunoadrover/gestiontaller/internal/repositories"
)

const dashboardCacheKey = "dashboard:stats"

// DashboardService corre el agregador sobre la historia completa y cachea el
// resultado en redis con TTL corto. El cache es mejora, no requisito: si
// redis falla se recalcula y listo.
type DashboardService struct {
	ingresoRepository repositories.IngresoRepositoryInterface
	equipoRepository  repositories.EquipoRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	classifier        *engine.Classifier
	clock             Clock
	cacheTTL          time.Duration
	logger            *zap.Logger
}

func NewDashboardService(
	ingresoRepository repositories.IngresoRepositoryInterface,
	equipoRepository repositories.EquipoRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	classifier *engine.Classifier,
	clock Clock,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		ingresoRepository: ingresoRepository,
		equipoRepository:  equipoRepository,
		cache:             cache,
		classifier:        classifier,
		clock:             clock,
		cacheTTL:          cacheTTL,
		logger:            logger,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, dashboardCacheKey); err == nil {
			var cached dto.DashboardDTO
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("cache del dashboard ilegible, recalculando")
		}
	}

	ingresos, err := s.ingresoRepository.GetIngresosConAcciones(ctx)
	if err != nil {
		return nil, err
	}
	equipos, err := s.equipoRepository.GetEquiposIndex(ctx)
	if err != nil {
		return nil, err
	}

	hoy := s.clock.Now()
	stats, err := s.classifier.Aggregate(ingresos, equipos, hoy)
	if err != nil {
		return nil, errorDeFecha(err)
	}

	out := &dto.DashboardDTO{
		Fecha: engine.FormatFecha(hoy),
		Stats: stats,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
				s.logger.Warn("no se pudo cachear el dashboard", zap.Error(err))
			}
		}
	}
	return out, nil
}

// InvalidateCache tira el agregado cacheado. Lo llaman los escritores para
// que el panel no muestre datos viejos más allá del TTL.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("no se pudo invalidar el cache del dashboard", zap.Error(err))
	}
}
