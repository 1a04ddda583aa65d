package engine

import (
	"testing"
	"time"

	"github.com/brunoadrover/gestiontaller/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fecha de referencia fija: los tests nunca leen el reloj.
var hoy = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

func ingresoConAcciones(fechaIngreso string, descripciones ...[2]string) *entities.Ingreso {
	ingreso := &entities.Ingreso{
		ID:           "ING-1",
		EquipoID:     "E1402",
		FechaIngreso: fechaIngreso,
	}
	for i, d := range descripciones {
		ingreso.Acciones = append(ingreso.Acciones, entities.Accion{
			ID:          string(rune('a' + i)),
			IngresoID:   ingreso.ID,
			Descripcion: d[0],
			FechaAccion: d[1],
			Responsable: "Taller",
		})
	}
	return ingreso
}

func TestClassify_SinAcciones(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	res, err := c.Classify(&entities.Ingreso{ID: "ING-vacio", FechaIngreso: "2025-05-12"}, hoy)
	require.NoError(t, err)
	assert.Equal(t, EstadoEnReparacion, res.Estado)
	assert.Equal(t, 0, res.DiasTotal)

	// La ventana cierra en la fecha de ingreso, no en hoy: la estadía cero
	// tiene que seguir saliendo de DiasEntre(ingreso, fin).
	assert.Equal(t, "2025-05-12", FormatFecha(res.FechaFin))
	fechaIngreso, _ := ParseFecha("2025-05-12")
	assert.Equal(t, DiasEntre(fechaIngreso, res.FechaFin), res.DiasTotal)
}

func TestClassify_IngresoDiagnostico(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-05-12",
		[2]string{"Ingreso a taller - Diagnóstico inicial", "2025-05-12"},
	)

	res, err := c.Classify(ingreso, hoy)
	require.NoError(t, err)
	assert.Equal(t, EstadoEnReparacion, res.Estado)

	fechaIngreso, _ := ParseFecha(ingreso.FechaIngreso)
	assert.Equal(t, DiasEntre(fechaIngreso, hoy), res.DiasTotal)
}

func TestClassify_Operativo(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-05-12",
		[2]string{"Ingreso a taller - Diagnóstico inicial", "2025-05-12"},
		[2]string{"Operativo", "2025-06-15"},
	)

	res, err := c.Classify(ingreso, hoy)
	require.NoError(t, err)
	assert.Equal(t, EstadoOperativo, res.Estado)
	assert.Equal(t, "2025-06-15", FormatFecha(res.FechaFin))
	assert.Equal(t, 34, res.DiasTotal)
}

func TestClassify_PrioridadDeEstados(t *testing.T) {
	c := NewClassifier(DefaultKeywords())

	casos := []struct {
		nombre string
		desc   string
		estado Estado
	}{
		{"operativo gana a prueba", "Operativo tras prueba de motor", EstadoOperativo},
		{"prueba gana a repuestos", "Prueba con repuesto provisorio", EstadoEnPrueba},
		{"repuestos", "Pedido de repuestos a Córdoba", EstadoEsperaRepuestos},
		{"repuestos por falta", "Falta junta de tapa de cilindros", EstadoEsperaRepuestos},
		{"sin keyword cae a reparación", "Desarme de mando final", EstadoEnReparacion},
		{"mayúsculas no importan", "OPERATIVO", EstadoOperativo},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			ingreso := ingresoConAcciones("2025-05-12", [2]string{caso.desc, "2025-05-20"})
			res, err := c.Classify(ingreso, hoy)
			require.NoError(t, err)
			assert.Equal(t, caso.estado, res.Estado)
		})
	}
}

func TestClassify_EntregaAnulaOperativo(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingreso := ingresoConAcciones("2025-05-12",
		[2]string{"Operativo - entrega pendiente al obrador", "2025-06-15"},
	)

	res, err := c.Classify(ingreso, hoy)
	require.NoError(t, err)
	assert.Equal(t, EstadoEnReparacion, res.Estado, "entrega fuerza reparación aunque diga operativo")
	assert.Equal(t, hoy, res.FechaFin, "sigue acumulando inactividad")
}

func TestClassify_SoloMiraLaUltimaAccion(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	// la penúltima dice operativo pero manda la última
	ingreso := ingresoConAcciones("2025-05-12",
		[2]string{"Operativo", "2025-06-15"},
		[2]string{"Reingreso por recalentamiento", "2025-07-01"},
	)

	res, err := c.Classify(ingreso, hoy)
	require.NoError(t, err)
	assert.Equal(t, EstadoEnReparacion, res.Estado)
}

func TestClassify_TotalDiasConsistenteConFechaFin(t *testing.T) {
	c := NewClassifier(DefaultKeywords())
	ingresos := []*entities.Ingreso{
		ingresoConAcciones("2025-05-12", [2]string{"Diagnóstico", "2025-05-12"}),
		ingresoConAcciones("2025-05-12", [2]string{"Operativo", "2025-06-15"}),
		ingresoConAcciones("2025-10-10", [2]string{"Pedido de repuestos", "2025-10-11"}),
		ingresoConAcciones("2025-05-12"),
	}

	for _, ingreso := range ingresos {
		res, err := c.Classify(ingreso, hoy)
		require.NoError(t, err)
		fechaIngreso, _ := ParseFecha(ingreso.FechaIngreso)
		assert.Equal(t, DiasEntre(fechaIngreso, res.FechaFin), res.DiasTotal)
	}
}

func TestClassify_FechaMalformada(t *testing.T) {
	c := NewClassifier(DefaultKeywords())

	t.Run("fecha_ingreso rota", func(t *testing.T) {
		ingreso := ingresoConAcciones("12-05-2025", [2]string{"Diagnóstico", "2025-05-12"})
		_, err := c.Classify(ingreso, hoy)
		var mdErr *MalformedDateError
		require.ErrorAs(t, err, &mdErr)
		assert.Equal(t, "fecha_ingreso", mdErr.Campo)
		assert.Equal(t, "ING-1", mdErr.IngresoID)
	})

	t.Run("fecha_accion rota con estado operativo", func(t *testing.T) {
		ingreso := ingresoConAcciones("2025-05-12", [2]string{"Operativo", "mañana"})
		_, err := c.Classify(ingreso, hoy)
		var mdErr *MalformedDateError
		require.ErrorAs(t, err, &mdErr)
		assert.Equal(t, "fecha_accion", mdErr.Campo)
	})
}

func TestClassify_KeywordsConfigurables(t *testing.T) {
	kw := DefaultKeywords()
	kw.Operativo = "listo"
	kw.Entrega = ""
	c := NewClassifier(kw)

	ingreso := ingresoConAcciones("2025-05-12", [2]string{"Equipo listo para entrega", "2025-06-01"})
	res, err := c.Classify(ingreso, hoy)
	require.NoError(t, err)
	assert.Equal(t, EstadoOperativo, res.Estado, "sin keyword de entrega no hay anulación")
}
