package seeders

import (
	"github.com/brunoadrover/gestiontaller/internal/entities"
	"github.com/brunoadrover/gestiontaller/pkg/utils"
)

// CatalogoInicial es el parque de maquinaria con el que arranca el sistema.
// Interno, valor a nuevo en USD y coeficiente de demérito vigente.
func CatalogoInicial() []entities.Equipo {
	return []entities.Equipo{
		// Serie A (acoplados y tanques)
		{ID: "A0001", Tipo: "ACOPLADO TANQUE AGUA/REGADOR DE TIRO 10 ≥ 25 m3", Marca: "NICAR", Modelo: "-", Horas: 0, ValorNuevo: 45000, Demerito: 0.8},
		{ID: "A0007", Tipo: "ACOPLADO PLAYO DE TIRO 15 ≥ 35 Ton", Marca: "PRATTI FRUENHAUF", Modelo: "TC-SP6011", Horas: 0, ValorNuevo: 55000, Demerito: 0.75},
		{ID: "A0021", Tipo: "ACOPLADO PLAYO DE TIRO 15 ≥ 35 Ton", Marca: "v0704", Modelo: "SA 16/20", Horas: 0, ValorNuevo: 55000, Demerito: 0.7},
		{ID: "A0053", Tipo: "ACOPLADO PLAYO DE TIRO 15 ≥ 35 Ton", Marca: "HELVETICA - FERRONI", Modelo: "SA 20/25 TT", Horas: 0, ValorNuevo: 60000, Demerito: 0.65},

		// Serie E (equipos pesados y plantas)
		{ID: "E0206", Tipo: "DISTRIBUIDOR DE AGR. PETREOS ARR.", Marca: "MICHELINI", Modelo: "FM/375", Horas: 98, ValorNuevo: 85000, Demerito: 0.9},
		{ID: "E0306", Tipo: "PLANTA CLASIFICADORA DE ARIDOS < 200 Tn/h", Marca: "FERRONI", Modelo: "PC-200", Horas: 18243, ValorNuevo: 450000, Demerito: 0.85},
		{ID: "E0307", Tipo: "PLANTA MEZCLADORA P/SUELO ESTAB. < 200 Tn/h", Marca: "FERRONI", Modelo: "PMS-200", Horas: 50000, ValorNuevo: 520000, Demerito: 0.8},
		{ID: "E0354", Tipo: "AUTOELEVADOR 3 ≤ Tn < 6", Marca: "HYSTER", Modelo: "H-110F", Horas: 12399, ValorNuevo: 75000, Demerito: 0.7},
		{ID: "E0404", Tipo: "RODILLO P. CABRA ESTATICO AUTOP. ≥ 25 Tn", Marca: "CATERPILLAR", Modelo: "825 STD", Horas: 16731, ValorNuevo: 650000, Demerito: 0.95},
		{ID: "E1014", Tipo: "MOTONIVELADORA 14'", Marca: "CATERPILLAR", Modelo: "140H", Horas: 23882, ValorNuevo: 380000, Demerito: 0.82},
		{ID: "E1070", Tipo: "EXCAVADORA S/ORUGAS ≥ 40 Tn", Marca: "KOMATSU", Modelo: "PC450-7", Horas: 15827, ValorNuevo: 550000, Demerito: 0.88},
		{ID: "E1402", Tipo: "EXCAVADORA S/ORUGAS 30 ≤ Tn < 40", Marca: "VOLVO", Modelo: "EC290 BLC PRIME", Horas: 11882, ValorNuevo: 320000, Demerito: 0.75},
		{ID: "E1403", Tipo: "EXCAVADORA S/ORUGAS 30 ≤ Tn < 40", Marca: "VOLVO", Modelo: "EC290 BLC PRIME", Horas: 6633, ValorNuevo: 320000, Demerito: 0.85},
		{ID: "E1464", Tipo: "EXCAVADORA S/ORUGAS 20 ≤ Tn < 30", Marca: "KOMATSU", Modelo: "PC240LC-8", Horas: 5744, ValorNuevo: 240000, Demerito: 0.9},

		// Serie V (vehículos de servicio y camiones)
		{ID: "V0704", Tipo: "CAMION REGADOR DE AGUA < 10 m3", Marca: "IVECO", Modelo: "170E 21 EUROCARGO", Horas: 3134, ValorNuevo: 120000, Demerito: 0.7},
		{ID: "V0748", Tipo: "CAMION TRACTOR 6X4", Marca: "IVECO", Modelo: "EUROTRAKKER 380 E37H", Horas: 14085, ValorNuevo: 180000, Demerito: 0.65},
		{ID: "V0771", Tipo: "CAMION SERVICIO DE TALLER", Marca: "IVECO", Modelo: "EUROCARGO 170 E22 TECTOR", Horas: 57591, ValorNuevo: 140000, Demerito: 0.6},
		{ID: "V1169", Tipo: "CAMION VOLCADOR ≥ 15 m3 6x4", Marca: "IVECO", Modelo: "TRAKKER HI LAND 410T44", Horas: 3041, ValorNuevo: 210000, Demerito: 0.95},

		// Serie Q (equipos nuevos)
		{ID: "Q0352", Tipo: "CAMION C/MOTOHORMIGONERO", Marca: "CARMIX", Modelo: "45FX", Horas: 867, ValorNuevo: 160000, Demerito: 0.98},
	}
}

type ingresoSemilla struct {
	Ingreso  entities.Ingreso
	Acciones []entities.Accion
}

// ingresosIniciales son tres historiales de muestra que cubren los estados
// típicos: uno devuelto operativo, uno a mitad de reparación y un service.
func ingresosIniciales() []ingresoSemilla {
	return []ingresoSemilla{
		{
			Ingreso: entities.Ingreso{
				ID:            "8e0f55aa-0d10-4f2a-9c52-111111111111",
				EquipoID:      "E1402",
				FechaIngreso:  "2025-05-12",
				ObraAsignada:  utils.ToPtr("Obra Presa Norte"),
				InformeFallas: "Ruidos anormales en el motor",
			},
			Acciones: []entities.Accion{
				{ID: "8e0f55aa-0d10-4f2a-9c52-a11111111111", Descripcion: "Ingreso a taller - Diagnóstico inicial", FechaAccion: "2025-05-12", Responsable: "Juan Pérez"},
				{ID: "8e0f55aa-0d10-4f2a-9c52-a11111111112", Descripcion: "Operativo", FechaAccion: "2025-06-15", Responsable: "Taller Central"},
			},
		},
		{
			Ingreso: entities.Ingreso{
				ID:            "8e0f55aa-0d10-4f2a-9c52-222222222222",
				EquipoID:      "E1464",
				FechaIngreso:  "2025-10-10",
				InformeFallas: "Pérdida de fluido hidráulico en mandos finales",
			},
			Acciones: []entities.Accion{
				{ID: "8e0f55aa-0d10-4f2a-9c52-a22222222221", Descripcion: "Revisión de sellos y retenes", FechaAccion: "2025-10-11", Responsable: "S. Técnico"},
				{ID: "8e0f55aa-0d10-4f2a-9c52-a22222222222", Descripcion: "Desarme de mando final izquierdo", FechaAccion: "2025-10-14", Responsable: "Mecánica 2"},
			},
		},
		{
			Ingreso: entities.Ingreso{
				ID:            "8e0f55aa-0d10-4f2a-9c52-333333333333",
				EquipoID:      "V1169",
				FechaIngreso:  "2025-11-20",
				InformeFallas: "Service preventivo - Cambio de aceites y filtros",
			},
			Acciones: []entities.Accion{
				{ID: "8e0f55aa-0d10-4f2a-9c52-a33333333331", Descripcion: "Cambio de aceite motor y filtros de aire", FechaAccion: "2025-11-21", Responsable: "Lubricentro"},
				{ID: "8e0f55aa-0d10-4f2a-9c52-a33333333332", Descripcion: "Operativo", FechaAccion: "2025-11-22", Responsable: "Lubricentro"},
			},
		},
	}
}
