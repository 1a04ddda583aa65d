package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/brunoadrover/gestiontaller/internal/entities"
)

// ConteoPorTipo es una barra del gráfico de rotación por tipo de equipo.
type ConteoPorTipo struct {
	Tipo     string `json:"tipo"`
	Cantidad int    `json:"cantidad"`
}

// DashboardStats son los KPIs agregados de la flota para el panel de control.
type DashboardStats struct {
	TotalIngresos int `json:"total_ingresos"`
	// Equipos no operativos hoy.
	EnTaller int `json:"en_taller"`

	// Conteos por estado derivado. Suman TotalIngresos.
	Operativos      int `json:"operativos"`
	EnPrueba        int `json:"en_prueba"`
	EsperaRepuestos int `json:"espera_repuestos"`
	EnReparacion    int `json:"en_reparacion"`

	// Estadía promedio en días, redondeada a 2 decimales.
	EstadiaPromedio float64 `json:"estadia_promedio"`
	// Suma de pérdidas estimadas de todos los ingresos, en USD.
	PerdidaTotal float64 `json:"perdida_total"`

	RetrabajosHistoricos int `json:"retrabajos_historicos"`
	RetrabajosEnTaller   int `json:"retrabajos_en_taller"`

	// Demora promedio entre un pedido de repuestos y la acción siguiente,
	// en días con 1 decimal.
	EsperaRepuestosPromedio float64 `json:"espera_repuestos_promedio"`

	// Top 5 de tipos de equipo por cantidad de ingresos, descendente. Los
	// ingresos con equipo borrado no figuran acá pero sí en el resto.
	PorTipo []ConteoPorTipo `json:"por_tipo"`
}

// Aggregate produce los KPIs del dashboard en una sola pasada por los
// ingresos. El índice de equipos es un lookup débil por interno: un equipo
// ausente excluye al ingreso del desglose por tipo y anula su pérdida, pero
// el ingreso sigue contando para estados y estadías.
func (c *Classifier) Aggregate(ingresos []entities.Ingreso, equipos map[string]*entities.Equipo, fechaRef time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{TotalIngresos: len(ingresos)}

	var sumaEstadias int
	var diasRepuestos, segmentosRepuestos int
	porTipo := make(map[string]int)

	for i := range ingresos {
		ingreso := &ingresos[i]

		resultado, err := c.Classify(ingreso, fechaRef)
		if err != nil {
			return nil, err
		}

		switch resultado.Estado {
		case EstadoOperativo:
			stats.Operativos++
		case EstadoEnPrueba:
			stats.EnPrueba++
			stats.EnTaller++
		case EstadoEsperaRepuestos:
			stats.EsperaRepuestos++
			stats.EnTaller++
		default:
			stats.EnReparacion++
			stats.EnTaller++
		}

		sumaEstadias += resultado.DiasTotal

		equipo := equipos[ingreso.EquipoID]
		stats.PerdidaTotal += EstimarPerdida(resultado.DiasTotal, equipo)
		if equipo != nil {
			porTipo[equipo.Tipo]++
		}

		if c.HasRetrabajo(ingreso.Acciones) {
			stats.RetrabajosHistoricos++
			if resultado.Estado != EstadoOperativo {
				stats.RetrabajosEnTaller++
			}
		}

		// Demora de repuestos: desde cada pedido hasta la acción que lo
		// sigue. El último pedido abierto no cierra segmento.
		for j := 0; j+1 < len(ingreso.Acciones); j++ {
			desc := strings.ToLower(ingreso.Acciones[j].Descripcion)
			if !containsAny(desc, c.kw.Repuestos) {
				continue
			}
			inicio, err := ParseFecha(ingreso.Acciones[j].FechaAccion)
			if err != nil {
				return nil, newMalformedDate(ingreso.ID, "fecha_accion", ingreso.Acciones[j].FechaAccion, err)
			}
			fin, err := ParseFecha(ingreso.Acciones[j+1].FechaAccion)
			if err != nil {
				return nil, newMalformedDate(ingreso.ID, "fecha_accion", ingreso.Acciones[j+1].FechaAccion, err)
			}
			diasRepuestos += DiasEntre(inicio, fin)
			segmentosRepuestos++
		}
	}

	if stats.TotalIngresos > 0 {
		stats.EstadiaPromedio = redondear(float64(sumaEstadias)/float64(stats.TotalIngresos), 2)
	}
	if segmentosRepuestos > 0 {
		stats.EsperaRepuestosPromedio = redondear(float64(diasRepuestos)/float64(segmentosRepuestos), 1)
	}

	stats.PorTipo = topTipos(porTipo, 5)

	return stats, nil
}

func topTipos(porTipo map[string]int, n int) []ConteoPorTipo {
	tipos := make([]ConteoPorTipo, 0, len(porTipo))
	for tipo, cantidad := range porTipo {
		tipos = append(tipos, ConteoPorTipo{Tipo: tipo, Cantidad: cantidad})
	}
	sort.Slice(tipos, func(i, j int) bool {
		if tipos[i].Cantidad != tipos[j].Cantidad {
			return tipos[i].Cantidad > tipos[j].Cantidad
		}
		// desempate estable para que el dashboard no parpadee
		return tipos[i].Tipo < tipos[j].Tipo
	})
	if len(tipos) > n {
		tipos = tipos[:n]
	}
	return tipos
}

func redondear(v float64, decimales int) float64 {
	factor := math.Pow(10, float64(decimales))
	return math.Round(v*factor) / factor
}
