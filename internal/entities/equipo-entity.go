package entities

import (
	"github.com/brunoadrover/gestiontaller/pkg/types"
)

// Equipo es un registro del catálogo maestro de maquinaria. El ID es el
// "interno" (patrimonio), lo asigna el usuario y no se reutiliza.
type Equipo struct {
	ID                string  `json:"id" db:"id"`
	Tipo              string  `json:"tipo" db:"tipo"`
	Marca             string  `json:"marca" db:"marca"`
	Modelo            string  `json:"modelo" db:"modelo"`
	Horas             int64   `json:"horas" db:"horas"`
	ValorNuevo        float64 `json:"valor_nuevo" db:"valor_nuevo"`
	Demerito          float64 `json:"demerito" db:"demerito"`
	ComentarioGeneral *string `json:"comentario_general,omitempty" db:"comentario_general"`

	types.BaseEntity
}
