package services

import "time"

// Clock abstrae el "hoy" del motor para poder fijarlo en los tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock devuelve siempre la misma fecha.
type FixedClock struct {
	Fecha time.Time
}

func (c FixedClock) Now() time.Time { return c.Fecha }
