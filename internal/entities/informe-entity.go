package entities

import (
	"github.com/brunoadrover/gestiontaller/pkg/types"
)

// InformeTaller es la planilla de inspección técnica de un ingreso: texto
// libre por subsistema. A lo sumo uno por ingreso, se hace upsert por
// ingreso_id.
type InformeTaller struct {
	IngresoID              string `json:"ingreso_id" db:"ingreso_id"`
	Motor                  string `json:"motor" db:"motor"`
	SistemaHidraulico      string `json:"sistema_hidraulico" db:"sistema_hidraulico"`
	SistemaElectrico       string `json:"sistema_electrico" db:"sistema_electrico"`
	SistemaNeumatico       string `json:"sistema_neumatico" db:"sistema_neumatico"`
	Estructura             string `json:"estructura" db:"estructura"`
	Cabina                 string `json:"cabina" db:"cabina"`
	TrenRodante            string `json:"tren_rodante" db:"tren_rodante"`
	ElementosDesgaste      string `json:"elementos_desgaste" db:"elementos_desgaste"`
	ComponentesEspecificos string `json:"componentes_especificos" db:"componentes_especificos"`
	Observaciones          string `json:"observaciones" db:"observaciones"`

	types.BaseEntity
}
