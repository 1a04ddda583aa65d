package engine

import "fmt"

// MalformedDateError señala una fecha imposible de parsear, nombrando el
// campo y el ingreso que la contiene. El sistema viejo dejaba pasar NaN en
// silencio; acá preferimos cortar con un error identificable.
type MalformedDateError struct {
	IngresoID string
	Campo     string
	Valor     string
	Err       error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("fecha inválida %q en campo %s del ingreso %s", e.Valor, e.Campo, e.IngresoID)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

func newMalformedDate(ingresoID, campo, valor string, err error) *MalformedDateError {
	return &MalformedDateError{IngresoID: ingresoID, Campo: campo, Valor: valor, Err: err}
}
