package engine

import (
	"strings"

	"github.com/brunoadrover/gestiontaller/internal/entities"
)

// HasRetrabajo marca un ingreso como reintervención si, recorriendo las
// acciones en orden:
//
//  1. una acción declarada operativa fue seguida más tarde por cualquier
//     acción no operativa (regresión después de darlo por arreglado), o
//  2. una acción de prueba de campo fue seguida inmediatamente por una acción
//     que no es tarea menor ni marca operativa (la prueba falló y volvió a
//     reparación).
//
// Alcanza con que un par adyacente cumpla cualquiera de las dos. Esto sólo
// alimenta los contadores históricos del dashboard: no toca la clasificación
// de estado.
func (c *Classifier) HasRetrabajo(acciones []entities.Accion) bool {
	huboOperativo := false

	for i, accion := range acciones {
		desc := strings.ToLower(accion.Descripcion)
		esOperativo := strings.Contains(desc, c.kw.Operativo)

		if huboOperativo && !esOperativo {
			return true
		}
		if esOperativo {
			huboOperativo = true
		}

		if i > 0 {
			prev := strings.ToLower(acciones[i-1].Descripcion)
			if containsAny(prev, c.kw.PruebaCampo) {
				if !containsAny(desc, c.kw.ExcluirRetrabajo) && !esOperativo {
					return true
				}
			}
		}
	}

	return false
}
