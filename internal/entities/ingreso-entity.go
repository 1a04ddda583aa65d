package entities

import (
	"github.com/brunoadrover/gestiontaller/pkg/types"
)

// Ingreso es una visita de un equipo al taller. EquipoID es una referencia
// débil: el equipo puede borrarse del catálogo y el ingreso queda huérfano,
// los consumidores tienen que tolerar la ausencia.
//
// Las fechas viajan como string YYYY-MM-DD (fecha de calendario, sin hora).
// El motor de clasificación es el único que las parsea.
type Ingreso struct {
	ID            string  `json:"id" db:"id"`
	EquipoID      string  `json:"equipo_id" db:"equipo_id"`
	FechaIngreso  string  `json:"fecha_ingreso" db:"fecha_ingreso"`
	ObraAsignada  *string `json:"obra_asignada,omitempty" db:"obra_asignada"`
	InformeFallas string  `json:"informe_fallas" db:"informe_fallas"`
	Observaciones *string `json:"observaciones,omitempty" db:"observaciones"`
	FechaSalida   *string `json:"fecha_salida,omitempty" db:"fecha_salida"`

	// Acciones en orden de inserción. El orden ES la cronología: la última
	// acción manda para el estado actual aunque su fecha diga otra cosa.
	// Nunca reordenar por fecha.
	Acciones []Accion `json:"acciones_taller" db:"-"`

	types.BaseEntity
}

// Accion es un paso registrado en la historia de un ingreso. Pertenece en
// exclusiva a su ingreso (se borra en cascada con él).
type Accion struct {
	ID          string `json:"id" db:"id"`
	IngresoID   string `json:"ingreso_id" db:"ingreso_id"`
	Descripcion string `json:"descripcion" db:"descripcion"`
	FechaAccion string `json:"fecha_accion" db:"fecha_accion"`
	Responsable string `json:"responsable" db:"responsable"`
}
