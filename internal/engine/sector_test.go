package engine

import (
	"testing"

	"github.com/brunoadrover/gestiontaller/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestSectorDe(t *testing.T) {
	casos := []struct {
		interno string
		equipo  *entities.Equipo
		sector  Sector
	}{
		{"E1402", &entities.Equipo{Tipo: "Excavadora"}, SectorPesados},
		{"e88", nil, SectorPesados},
		{"V12", &entities.Equipo{Tipo: "Camión volcador", Marca: "Iveco"}, SectorCamiones},
		{"V30", &entities.Equipo{Tipo: "Colectivo", Marca: "Mercedes-Benz"}, SectorCamiones},
		{"V45", &entities.Equipo{Tipo: "Utilitario", Marca: "Toyota", Modelo: "Hilux"}, SectorLivianos},
		{"V45", nil, SectorLivianos},
		{"Q07", &entities.Equipo{Tipo: "Acoplado"}, SectorOtros},
		{"A3", nil, SectorOtros},
	}

	for _, caso := range casos {
		t.Run(caso.interno, func(t *testing.T) {
			ingreso := &entities.Ingreso{ID: "ING-1", EquipoID: caso.interno}
			assert.Equal(t, caso.sector, SectorDe(ingreso, caso.equipo))
		})
	}
}
