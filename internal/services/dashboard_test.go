package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/engine"
	"github.com/brunoadrover/gestiontaller/internal/entities"
	"github.com/brunoadrover/gestiontaller/internal/repositories"
)

var fechaDeTest = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

func dashboardDePrueba(cache *fakeCache) *DashboardService {
	equipos := newFakeEquipoRepo(
		&entities.Equipo{ID: "E1402", Tipo: "Excavadora", ValorNuevo: 320000, Demerito: 0.75},
	)
	ingresos := newFakeIngresoRepo(
		&entities.Ingreso{
			ID:           "ING-1",
			EquipoID:     "E1402",
			FechaIngreso: "2025-05-12",
			Acciones: []entities.Accion{
				{ID: "a1", IngresoID: "ING-1", Descripcion: "Ingreso - diagnóstico", FechaAccion: "2025-05-12"},
				{ID: "a2", IngresoID: "ING-1", Descripcion: "Operativo", FechaAccion: "2025-06-15"},
			},
		},
		&entities.Ingreso{
			ID:           "ING-2",
			EquipoID:     "E1402",
			FechaIngreso: "2025-10-10",
			Acciones: []entities.Accion{
				{ID: "b1", IngresoID: "ING-2", Descripcion: "Pedido de repuestos", FechaAccion: "2025-10-11"},
			},
		},
	)

	var cacheRepo repositories.CacheRepositoryInterface
	if cache != nil {
		cacheRepo = cache
	}
	return NewDashboardService(ingresos, equipos, cacheRepo, engine.NewClassifier(engine.DefaultKeywords()),
		FixedClock{Fecha: fechaDeTest}, time.Minute, zap.NewNop())
}

func TestDashboardService_GetDashboard(t *testing.T) {
	svc := dashboardDePrueba(nil)

	res, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-12-01", res.Fecha)
	require.NotNil(t, res.Stats)
	assert.Equal(t, 2, res.Stats.TotalIngresos)
	assert.Equal(t, 1, res.Stats.Operativos)
	assert.Equal(t, 1, res.Stats.EsperaRepuestos)
	assert.Equal(t, 1, res.Stats.EnTaller)
}

func TestDashboardService_CacheHit(t *testing.T) {
	cache := newFakeCache()
	svc := dashboardDePrueba(cache)

	primero, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "el primer cálculo se cachea")

	segundo, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "el segundo pedido sale del cache")
	assert.Equal(t, primero.Stats.TotalIngresos, segundo.Stats.TotalIngresos)
	assert.Equal(t, primero.Stats.PerdidaTotal, segundo.Stats.PerdidaTotal)
}

func TestDashboardService_InvalidateCache(t *testing.T) {
	cache := newFakeCache()
	svc := dashboardDePrueba(cache)

	_, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	svc.InvalidateCache(context.Background())
	assert.Equal(t, 1, cache.dels)

	_, err = svc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets, "tras invalidar se recalcula y se vuelve a cachear")
}
