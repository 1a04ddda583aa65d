package utils

import "time"

// FormatearFecha imprime un timestamp de auditoría en hora local, o vacío si
// la columna es NULL.
func FormatearFecha(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
