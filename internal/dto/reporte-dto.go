package dto

// FilaHistorialDTO es una fila del reporte de historial: el ingreso con todos
// sus derivados ya resueltos, listo para tabular.
type FilaHistorialDTO struct {
	IngresoID       string     `json:"ingreso_id"`
	EquipoID        string     `json:"equipo_id"`
	TipoEquipo      string     `json:"tipo_equipo"`
	Marca           string     `json:"marca"`
	Modelo          string     `json:"modelo"`
	FechaIngreso    string     `json:"fecha_ingreso"`
	ObraAsignada    string     `json:"obra_asignada"`
	InformeFallas   string     `json:"informe_fallas"`
	Estado          string     `json:"estado"`
	DiasTotal       int        `json:"dias_total"`
	PerdidaEstimada float64    `json:"perdida_estimada"`
	Retrabajo       bool       `json:"retrabajo"`
	Sector          string     `json:"sector"`
	UltimaAccion    string     `json:"ultima_accion"`
	Etapas          []EtapaDTO `json:"etapas"`
}

type ReporteHistorialDTO struct {
	Filas   []FilaHistorialDTO `json:"filas"`
	Resumen *DashboardDTO      `json:"resumen"`
}
