package dto

type UpsertInformeDTO struct {
	Motor                  string `json:"motor" validate:"omitempty,max=2000"`
	SistemaHidraulico      string `json:"sistema_hidraulico" validate:"omitempty,max=2000"`
	SistemaElectrico       string `json:"sistema_electrico" validate:"omitempty,max=2000"`
	SistemaNeumatico       string `json:"sistema_neumatico" validate:"omitempty,max=2000"`
	Estructura             string `json:"estructura" validate:"omitempty,max=2000"`
	Cabina                 string `json:"cabina" validate:"omitempty,max=2000"`
	TrenRodante            string `json:"tren_rodante" validate:"omitempty,max=2000"`
	ElementosDesgaste      string `json:"elementos_desgaste" validate:"omitempty,max=2000"`
	ComponentesEspecificos string `json:"componentes_especificos" validate:"omitempty,max=2000"`
	Observaciones          string `json:"observaciones" validate:"omitempty,max=2000"`
}

type InformeDTO struct {
	IngresoID              string `json:"ingreso_id"`
	Motor                  string `json:"motor"`
	SistemaHidraulico      string `json:"sistema_hidraulico"`
	SistemaElectrico       string `json:"sistema_electrico"`
	SistemaNeumatico       string `json:"sistema_neumatico"`
	Estructura             string `json:"estructura"`
	Cabina                 string `json:"cabina"`
	TrenRodante            string `json:"tren_rodante"`
	ElementosDesgaste      string `json:"elementos_desgaste"`
	ComponentesEspecificos string `json:"componentes_especificos"`
	Observaciones          string `json:"observaciones"`
	UpdatedAt              string `json:"updated_at"`
}
