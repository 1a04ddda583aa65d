package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuracionesEtapas_SinAcciones(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	etapas, err := c.DuracionesEtapas(ingresoConAcciones("2025-05-12"), hoy)
	require.NoError(t, err)
	assert.Empty(t, etapas)
}

func TestDuracionesEtapas_IngresoAbierto(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-10-10",
		[2]string{"Revisión de sellos y retenes", "2025-10-11"},
		[2]string{"Desarme de mando final izquierdo", "2025-10-14"},
	)

	etapas, err := c.DuracionesEtapas(ingreso, hoy)
	require.NoError(t, err)
	require.Len(t, etapas, 2)

	// primera etapa cierra con la acción siguiente
	assert.Equal(t, 3, etapas[0].DiasEtapa)
	assert.Equal(t, 4, etapas[0].DiasAcumulados)

	// la última sigue abierta hasta la fecha de referencia (2025-12-01)
	assert.Equal(t, 48, etapas[1].DiasEtapa)
	assert.Equal(t, 52, etapas[1].DiasAcumulados)
}

func TestDuracionesEtapas_IngresoOperativo(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-05-12",
		[2]string{"Ingreso a taller - Diagnóstico inicial", "2025-05-12"},
		[2]string{"Operativo", "2025-06-15"},
	)

	etapas, err := c.DuracionesEtapas(ingreso, hoy)
	require.NoError(t, err)
	require.Len(t, etapas, 2)

	assert.Equal(t, 34, etapas[0].DiasEtapa)
	assert.Equal(t, 34, etapas[0].DiasAcumulados)

	// ya operativo: la etapa final mide cero, no sigue acumulando
	assert.Equal(t, 0, etapas[1].DiasEtapa)
	assert.Equal(t, 34, etapas[1].DiasAcumulados)
}

func TestDuracionesEtapas_EsRecomputable(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-10-10",
		[2]string{"Revisión de sellos", "2025-10-11"},
		[2]string{"Pedido de repuestos", "2025-10-14"},
	)

	primera, err := c.DuracionesEtapas(ingreso, hoy)
	require.NoError(t, err)
	segunda, err := c.DuracionesEtapas(ingreso, hoy)
	require.NoError(t, err)
	assert.Equal(t, primera, segunda, "no muta sus entradas, recomputar da lo mismo")
}

func TestDuracionesEtapas_FechaMalformada(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-10-10",
		[2]string{"Revisión", "2025-10-11"},
		[2]string{"Desarme", "14/10/2025"},
	)

	_, err := c.DuracionesEtapas(ingreso, hoy)
	var mdErr *MalformedDateError
	require.ErrorAs(t, err, &mdErr)
	assert.Equal(t, "fecha_accion", mdErr.Campo)
	assert.Equal(t, "14/10/2025", mdErr.Valor)
}
