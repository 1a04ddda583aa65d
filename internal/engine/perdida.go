package engine

import (
	"github.com/brunoadrover/gestiontaller/internal/entities"
)

// Constantes de la estimación de pérdida de facturación. Son una heurística
// comercial heredada (≈1.625% del valor del equipo por mes parado), no un
// cálculo contable: hay que reproducirlas tal cual, no rederivarlas.
const (
	tasaPerdidaMensual = 0.0325
	factorUtilizacion  = 0.5
	demeritoDefecto    = 0.8
)

// EstimarPerdida calcula la pérdida de facturación estimada en USD por tener
// el equipo parado la cantidad de días dada. Equipo ausente (borrado del
// catálogo) vale 0, nunca es error.
func EstimarPerdida(dias int, equipo *entities.Equipo) float64 {
	if equipo == nil {
		return 0
	}
	demerito := equipo.Demerito
	if demerito == 0 {
		demerito = demeritoDefecto
	}
	return (float64(dias) / 30) * tasaPerdidaMensual * demerito * factorUtilizacion * equipo.ValorNuevo
}
