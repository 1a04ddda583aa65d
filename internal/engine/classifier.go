package engine

import (
	"strings"
	"time"

	"github.com/brunoadrover/gestiontaller/internal/entities"
)

// Estado es el estado operativo derivado de un ingreso. No se persiste:
// siempre se calcula desde la última acción del historial, así nunca puede
// quedar desincronizado del relato del taller.
type Estado string

const (
	EstadoOperativo       Estado = "operativo"
	EstadoEnPrueba        Estado = "en_prueba"
	EstadoEsperaRepuestos Estado = "espera_repuestos"
	EstadoEnReparacion    Estado = "en_reparacion"
)

// Etiqueta devuelve el nombre del estado para pantallas y reportes.
func (e Estado) Etiqueta() string {
	switch e {
	case EstadoOperativo:
		return "Operativo"
	case EstadoEnPrueba:
		return "En Prueba"
	case EstadoEsperaRepuestos:
		return "Esperando Repuestos"
	default:
		return "En Reparación"
	}
}

// ResultadoEstado es la salida de Classify: estado actual, fecha de fin de la
// ventana de inactividad y estadía total en días.
type ResultadoEstado struct {
	Estado    Estado    `json:"estado"`
	FechaFin  time.Time `json:"fecha_fin"`
	DiasTotal int       `json:"dias_total"`
}

// Classifier concentra toda la lógica de estado/estadía/pérdida que antes
// vivía repetida, con variaciones, en tres vistas distintas.
type Classifier struct {
	kw KeywordConfig
}

func NewClassifier(kw KeywordConfig) *Classifier {
	return &Classifier{kw: kw}
}

// Classify determina el estado actual del ingreso mirando SOLO la
// descripción de la última acción, en orden de prioridad:
// operativo > en prueba > espera repuestos > en reparación. La palabra de
// entrega fuerza reparación aunque diga operativo.
//
// Si está operativo la inactividad terminó en la fecha de esa acción; si no,
// sigue corriendo hasta fechaRef (hoy).
func (c *Classifier) Classify(ingreso *entities.Ingreso, fechaRef time.Time) (ResultadoEstado, error) {
	// Sin acciones no hay estado determinable: cae a "en reparación" con
	// estadía cero, nunca a error. La ventana se cierra en la fecha de
	// ingreso para que DiasTotal siga siendo DiasEntre(ingreso, fin).
	if len(ingreso.Acciones) == 0 {
		fechaFin := aDia(fechaRef)
		if f, err := ParseFecha(ingreso.FechaIngreso); err == nil {
			fechaFin = aDia(f)
		}
		return ResultadoEstado{Estado: EstadoEnReparacion, FechaFin: fechaFin, DiasTotal: 0}, nil
	}

	ultima := ingreso.Acciones[len(ingreso.Acciones)-1]
	desc := strings.ToLower(ultima.Descripcion)

	forzadoReparacion := c.kw.Entrega != "" && strings.Contains(desc, c.kw.Entrega)
	esOperativo := !forzadoReparacion && strings.Contains(desc, c.kw.Operativo)
	esPrueba := !esOperativo && !forzadoReparacion && containsAny(desc, c.kw.Pruebas)
	esEspera := !esOperativo && !esPrueba && !forzadoReparacion && containsAny(desc, c.kw.Repuestos)

	estado := EstadoEnReparacion
	switch {
	case esOperativo:
		estado = EstadoOperativo
	case esPrueba:
		estado = EstadoEnPrueba
	case esEspera:
		estado = EstadoEsperaRepuestos
	}

	fechaFin := aDia(fechaRef)
	if esOperativo {
		f, err := ParseFecha(ultima.FechaAccion)
		if err != nil {
			return ResultadoEstado{}, newMalformedDate(ingreso.ID, "fecha_accion", ultima.FechaAccion, err)
		}
		fechaFin = aDia(f)
	}

	fechaIngreso, err := ParseFecha(ingreso.FechaIngreso)
	if err != nil {
		return ResultadoEstado{}, newMalformedDate(ingreso.ID, "fecha_ingreso", ingreso.FechaIngreso, err)
	}

	return ResultadoEstado{
		Estado:    estado,
		FechaFin:  fechaFin,
		DiasTotal: DiasEntre(fechaIngreso, fechaFin),
	}, nil
}
