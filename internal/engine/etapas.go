package engine

import (
	"time"

	"github.com/brunoadrover/gestiontaller/internal/entities"
)

// DuracionEtapa es una fila del desglose cronológico de un ingreso: cuántos
// días duró la etapa que abre cada acción y la estadía acumulada hasta su
// cierre. Las tablas en pantalla y los reportes exportados derivan todos de
// este único cálculo.
type DuracionEtapa struct {
	Accion         entities.Accion `json:"accion"`
	DiasEtapa      int             `json:"dias_etapa"`
	DiasAcumulados int             `json:"dias_acumulados"`
}

// DuracionesEtapas recorre el historial una sola vez y calcula, para cada
// acción, el fin de su etapa: la fecha de la acción siguiente si existe; si
// es la última, fechaRef mientras el equipo siga parado, o la propia fecha de
// la acción (etapa de largo cero) si ya está operativo.
//
// No muta sus entradas y puede recomputarse libremente.
func (c *Classifier) DuracionesEtapas(ingreso *entities.Ingreso, fechaRef time.Time) ([]DuracionEtapa, error) {
	if len(ingreso.Acciones) == 0 {
		return nil, nil
	}

	resultado, err := c.Classify(ingreso, fechaRef)
	if err != nil {
		return nil, err
	}
	operativo := resultado.Estado == EstadoOperativo

	fechaIngreso, err := ParseFecha(ingreso.FechaIngreso)
	if err != nil {
		return nil, newMalformedDate(ingreso.ID, "fecha_ingreso", ingreso.FechaIngreso, err)
	}

	etapas := make([]DuracionEtapa, 0, len(ingreso.Acciones))
	for i, accion := range ingreso.Acciones {
		inicio, err := ParseFecha(accion.FechaAccion)
		if err != nil {
			return nil, newMalformedDate(ingreso.ID, "fecha_accion", accion.FechaAccion, err)
		}

		var fin time.Time
		switch {
		case i+1 < len(ingreso.Acciones):
			fin, err = ParseFecha(ingreso.Acciones[i+1].FechaAccion)
			if err != nil {
				return nil, newMalformedDate(ingreso.ID, "fecha_accion", ingreso.Acciones[i+1].FechaAccion, err)
			}
		case operativo:
			fin = inicio
		default:
			fin = fechaRef
		}

		etapas = append(etapas, DuracionEtapa{
			Accion:         accion,
			DiasEtapa:      DiasEntre(inicio, fin),
			DiasAcumulados: DiasEntre(fechaIngreso, fin),
		})
	}

	return etapas, nil
}
