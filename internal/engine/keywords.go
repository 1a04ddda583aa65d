package engine

import "strings"

// KeywordConfig externaliza las listas de palabras clave que gobiernan la
// clasificación. Son datos, no constantes: los tests y la configuración
// pueden cambiar la política de matching sin tocar el algoritmo.
type KeywordConfig struct {
	// Marcador de equipo operativo en la última acción.
	Operativo string `json:"operativo"`
	// Marcador de salida forzada por entrega: si aparece, anula la
	// clasificación de operativo. Histórico inconsistente en las vistas
	// viejas, por eso queda configurable.
	Entrega string `json:"entrega"`
	// Acción de prueba (estado "en prueba").
	Pruebas []string `json:"pruebas"`
	// Pedido de repuestos (estado "espera de repuestos").
	Repuestos []string `json:"repuestos"`
	// Señales de prueba de campo, para la detección de retrabajos.
	PruebaCampo []string `json:"prueba_campo"`
	// Tareas menores que NO cuentan como retrabajo tras una prueba.
	ExcluirRetrabajo []string `json:"excluir_retrabajo"`
}

// DefaultKeywords replica las listas que usaba la planilla original.
func DefaultKeywords() KeywordConfig {
	return KeywordConfig{
		Operativo:        "operativo",
		Entrega:          "entrega",
		Pruebas:          []string{"prueba", "probar", "prueva"},
		Repuestos:        []string{"pedido", "repuesto", "terceros", "compra", "adquisición", "pendiente", "insumo", "falta"},
		PruebaCampo:      []string{"prueba", "campo"},
		ExcluirRetrabajo: []string{"service", "niveles", "lavado", "lavadero"},
	}
}

func containsAny(desc string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
