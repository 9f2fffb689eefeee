// file: internals/features/deudores/dto/deudor_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
)

type CreateDeudorRequest struct {
	Nombre    string  `json:"nombre" validate:"required,max=150"`
	Apellidos string  `json:"apellidos" validate:"required,max=150"`
	DNI       *string `json:"dni,omitempty" validate:"omitempty,max=20"`
	Telefono  *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion *string `json:"direccion,omitempty"`
	Notas     *string `json:"notas,omitempty"`
}

type UpdateDeudorRequest struct {
	Nombre    string  `json:"nombre" validate:"required,max=150"`
	Apellidos string  `json:"apellidos" validate:"required,max=150"`
	DNI       *string `json:"dni,omitempty" validate:"omitempty,max=20"`
	Telefono  *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Direccion *string `json:"direccion,omitempty"`
	Notas     *string `json:"notas,omitempty"`
	Activo    *bool   `json:"activo,omitempty"`
}

// DeudorConResumen: fila del listado con su resumen financiero
type DeudorConResumen struct {
	model.DeudorModel
	TotalPagado    decimal.Decimal `json:"total_pagado"`
	TotalPrestado  decimal.Decimal `json:"total_prestado"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
	TotalPrestamos int64           `json:"total_prestamos"`
	UltimoPago     *time.Time      `json:"ultimo_pago,omitempty"`
}

func (r CreateDeudorRequest) ToModel() *model.DeudorModel {
	return &model.DeudorModel{
		Nombre:    r.Nombre,
		Apellidos: r.Apellidos,
		DNI:       r.DNI,
		Telefono:  r.Telefono,
		Email:     r.Email,
		Direccion: r.Direccion,
		Notas:     r.Notas,
		Activo:    true,
	}
}

func (r UpdateDeudorRequest) Apply(m *model.DeudorModel) {
	m.Nombre = r.Nombre
	m.Apellidos = r.Apellidos
	m.DNI = r.DNI
	m.Telefono = r.Telefono
	m.Email = r.Email
	m.Direccion = r.Direccion
	m.Notas = r.Notas
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}
