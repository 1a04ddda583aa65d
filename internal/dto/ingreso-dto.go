package dto

import (
	"github.com/aarondl/null/v8"
)

// El ingreso nace con exactamente una acción (el diagnóstico inicial): un
// ingreso sin historia no clasifica.
type CreateIngresoDTO struct {
	EquipoID      string          `json:"equipo_id" validate:"required,max=20"`
	FechaIngreso  string          `json:"fecha_ingreso" validate:"required,datetime=2006-01-02"`
	ObraAsignada  *string         `json:"obra_asignada,omitempty"`
	InformeFallas string          `json:"informe_fallas" validate:"required"`
	Observaciones *string         `json:"observaciones,omitempty"`
	FechaSalida   *string         `json:"fecha_salida,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AccionInicial CreateAccionDTO `json:"accion_inicial" validate:"required"`
}

type UpdateIngresoDTO struct {
	ObraAsignada  null.String `json:"obra_asignada,omitempty"`
	InformeFallas null.String `json:"informe_fallas,omitempty"`
	Observaciones null.String `json:"observaciones,omitempty"`
	FechaSalida   null.String `json:"fecha_salida,omitempty"`
}

type CreateAccionDTO struct {
	Descripcion string `json:"descripcion" validate:"required"`
	FechaAccion string `json:"fecha_accion" validate:"required,datetime=2006-01-02"`
	Responsable string `json:"responsable" validate:"omitempty,max=100"`
}

type UpdateAccionDTO struct {
	Descripcion null.String `json:"descripcion,omitempty"`
	FechaAccion null.String `json:"fecha_accion,omitempty"`
	Responsable null.String `json:"responsable,omitempty"`
}

type AccionDTO struct {
	ID          string `json:"id"`
	Descripcion string `json:"descripcion"`
	FechaAccion string `json:"fecha_accion"`
	Responsable string `json:"responsable"`
}

type EtapaDTO struct {
	Descripcion    string `json:"descripcion"`
	FechaAccion    string `json:"fecha_accion"`
	DiasEtapa      int    `json:"dias_etapa"`
	DiasAcumulados int    `json:"dias_acumulados"`
}

// IngresoDTO es la vista de detalle: entidad más los derivados del motor
// (estado, días, pérdida, etapas). Nada de esto se persiste.
type IngresoDTO struct {
	ID            string          `json:"id"`
	Equipo        *ShortEquipoDTO `json:"equipo,omitempty"`
	EquipoID      string          `json:"equipo_id"`
	FechaIngreso  string          `json:"fecha_ingreso"`
	ObraAsignada  *string         `json:"obra_asignada,omitempty"`
	InformeFallas string          `json:"informe_fallas"`
	Observaciones *string         `json:"observaciones,omitempty"`
	FechaSalida   *string         `json:"fecha_salida,omitempty"`
	Acciones      []AccionDTO     `json:"acciones_taller"`

	Estado          string     `json:"estado"`
	DiasTotal       int        `json:"dias_total"`
	PerdidaEstimada float64    `json:"perdida_estimada"`
	Retrabajo       bool       `json:"retrabajo"`
	Sector          string     `json:"sector"`
	Etapas          []EtapaDTO `json:"etapas"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type IngresoListDTO struct {
	ID            string          `json:"id"`
	Equipo        *ShortEquipoDTO `json:"equipo,omitempty"`
	EquipoID      string          `json:"equipo_id"`
	FechaIngreso  string          `json:"fecha_ingreso"`
	InformeFallas string          `json:"informe_fallas"`
	Estado        string          `json:"estado"`
	DiasTotal     int             `json:"dias_total"`
	UltimaAccion  string          `json:"ultima_accion"`
}
