package errors

import "fmt"

var (
	// JWT y tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de firma del token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("el token expiró")

	// Autenticación
	ErrEmptyAuthHeader    = fmt.Errorf("falta el encabezado de autorización")
	ErrInvalidAuthHeader  = fmt.Errorf("formato de encabezado de autorización inválido")
	ErrInvalidCredentials = fmt.Errorf("clave de taller incorrecta")
	ErrUnauthorized       = fmt.Errorf("no autorizado")

	// Generales
	ErrNotFound      = fmt.Errorf("registro no encontrado")
	ErrBadRequest    = fmt.Errorf("solicitud inválida")
	ErrAlreadyExists = fmt.Errorf("el registro ya existe")
)

// HttpError lleva el código HTTP, el mensaje para el usuario y el error
// interno para los logs. Context son datos extra que sólo van al log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
