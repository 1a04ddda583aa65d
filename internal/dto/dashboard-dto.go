package dto

import "github.com/brunoadrover/gestiontaller/internal/engine"

type DashboardDTO struct {
	Fecha string                 `json:"fecha"`
	Stats *engine.DashboardStats `json:"stats"`
}
