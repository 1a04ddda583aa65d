package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipoDTO struct {
	ID             string  `json:"id" validate:"required,max=20"`
	Tipo           string  `json:"tipo" validate:"required,max=100"`
	Marca          string  `json:"marca" validate:"omitempty,max=100"`
	Modelo         string  `json:"modelo" validate:"omitempty,max=100"`
	Horas          int64   `json:"horas" validate:"omitempty,gte=0"`
	ValorNuevo     float64 `json:"valor_nuevo" validate:"omitempty,gte=0"`
	Demerito       float64 `json:"demerito" validate:"omitempty,gt=0,lte=1"`
	ComentarioGral *string `json:"comentario_general,omitempty"`
}

type UpdateEquipoDTO struct {
	Tipo           null.String  `json:"tipo,omitempty"`
	Marca          null.String  `json:"marca,omitempty"`
	Modelo         null.String  `json:"modelo,omitempty"`
	Horas          null.Int64   `json:"horas,omitempty"`
	ValorNuevo     null.Float64 `json:"valor_nuevo,omitempty"`
	Demerito       null.Float64 `json:"demerito,omitempty"`
	ComentarioGral null.String  `json:"comentario_general,omitempty"`
}

type EquipoDTO struct {
	ID             string  `json:"id"`
	Tipo           string  `json:"tipo"`
	Marca          string  `json:"marca"`
	Modelo         string  `json:"modelo"`
	Horas          int64   `json:"horas"`
	ValorNuevo     float64 `json:"valor_nuevo"`
	Demerito       float64 `json:"demerito"`
	ComentarioGral *string `json:"comentario_general,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ShortEquipoDTO struct {
	ID     string `json:"id"`
	Tipo   string `json:"tipo"`
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
}
