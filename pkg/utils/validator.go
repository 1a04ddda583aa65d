package utils

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapta go-playground/validator al hook Validator de Echo.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
