package engine

import (
	"strings"

	"github.com/brunoadrover/gestiontaller/internal/entities"
)

// Sector clasifica un ingreso por sector del taller según la serie del
// interno: E = equipos pesados, V = camiones o livianos según la descripción
// del equipo, el resto (acoplados, serie Q) queda en otros. Se usa como
// filtro del historial de operativos.
type Sector string

const (
	SectorPesados  Sector = "pesados"
	SectorCamiones Sector = "camiones"
	SectorLivianos Sector = "livianos"
	SectorOtros    Sector = "otros"
)

func SectorDe(ingreso *entities.Ingreso, equipo *entities.Equipo) Sector {
	interno := strings.ToUpper(ingreso.EquipoID)

	if strings.HasPrefix(interno, "E") {
		return SectorPesados
	}
	if strings.HasPrefix(interno, "V") {
		var desc string
		if equipo != nil {
			desc = strings.ToLower(equipo.Tipo + " " + equipo.Marca + " " + equipo.Modelo)
		}
		if strings.Contains(desc, "camión") || strings.Contains(desc, "camion") || strings.Contains(desc, "colectivo") {
			return SectorCamiones
		}
		return SectorLivianos
	}
	return SectorOtros
}
