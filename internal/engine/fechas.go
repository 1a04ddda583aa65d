package engine

import (
	"time"
)

// Convención única de fechas en todo el motor: YYYY-MM-DD interpretado como
// medianoche local. El sistema viejo mezclaba parseos UTC y locales y eso
// producía corrimientos de un día cerca de medianoche.
const FechaLayout = "2006-01-02"

func ParseFecha(s string) (time.Time, error) {
	return time.ParseInLocation(FechaLayout, s, time.Local)
}

func FormatFecha(t time.Time) string {
	return t.Format(FechaLayout)
}

// truncar a medianoche en UTC: las restas de días quedan inmunes a los
// cambios de hora (DST) porque todos los días miden exactamente 24h.
func aDia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DiasEntre devuelve la diferencia en días calendario enteros entre start y
// end, piso y nunca negativa. Un intervalo invertido (end antes que start) es
// una anomalía de carga de datos y se achata a cero en vez de fallar.
func DiasEntre(start, end time.Time) int {
	dias := int(aDia(end).Sub(aDia(start)) / (24 * time.Hour))
	if dias < 0 {
		return 0
	}
	return dias
}
