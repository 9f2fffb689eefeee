// file: internals/features/prestamos/dto/prestamo_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	pagoModel "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	model "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
	service "github.com/dalp10/CobrosBackend/internals/features/prestamos/service"
)

type CreatePrestamoRequest struct {
	DeudorID      int             `json:"deudor_id" validate:"required,gt=0"`
	Tipo          string          `json:"tipo" validate:"required,oneof=prestamo_personal prestamo_bancario pandero otro"`
	Descripcion   *string         `json:"descripcion,omitempty" validate:"omitempty,max=255"`
	MontoOriginal decimal.Decimal `json:"monto_original" validate:"required"`
	TasaInteres   *decimal.Decimal `json:"tasa_interes,omitempty"`

	TotalCuotas  int              `json:"total_cuotas,omitempty" validate:"omitempty,gte=0"`
	CuotaMensual *decimal.Decimal `json:"cuota_mensual,omitempty"`

	FechaInicio time.Time  `json:"fecha_inicio" validate:"required"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`

	Banco           *string `json:"banco,omitempty" validate:"omitempty,max=100"`
	NumeroOperacion *string `json:"numero_operacion,omitempty" validate:"omitempty,max=100"`
	Notas           *string `json:"notas,omitempty"`

	// Pandero: número de cuota que lleva el premio y su monto
	CuotaPremio *int             `json:"cuota_premio,omitempty" validate:"omitempty,gt=0"`
	MontoPremio *decimal.Decimal `json:"monto_premio,omitempty"`
}

// El valor se valida contra el enum del model (PrestamoEstado.Valido).
type UpdateEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// PrestamoConSaldo: fila del listado con totales y conteo de cuotas
type PrestamoConSaldo struct {
	model.PrestamoModel
	DeudorNombre     string          `json:"deudor_nombre"`
	TotalPagado      decimal.Decimal `json:"total_pagado"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	CuotasPagadas    int64           `json:"cuotas_pagadas"`
	CuotasPendientes int64           `json:"cuotas_pendientes"`
}

// PrestamoDetalle: préstamo + cronograma + pagos + saldo (GET /prestamos/:id)
type PrestamoDetalle struct {
	model.PrestamoModel
	DeudorNombre       string                 `json:"deudor_nombre"`
	Cuotas             []model.CuotaModel     `json:"cuotas"`
	Pagos              []pagoModel.PagoModel  `json:"pagos"`
	Saldo              service.SaldoPrestamo  `json:"saldo"`
	ProximoVencimiento *time.Time             `json:"proximo_vencimiento,omitempty"`
}

func (r CreatePrestamoRequest) ToModel() *model.PrestamoModel {
	tasa := decimal.Zero
	if r.TasaInteres != nil {
		tasa = *r.TasaInteres
	}
	total := r.TotalCuotas
	if total == 0 {
		total = 1
	}
	return &model.PrestamoModel{
		DeudorID:        r.DeudorID,
		Tipo:            model.PrestamoTipo(r.Tipo),
		Descripcion:     r.Descripcion,
		MontoOriginal:   r.MontoOriginal,
		TasaInteres:     tasa,
		TotalCuotas:     total,
		CuotaMensual:    r.CuotaMensual,
		FechaInicio:     r.FechaInicio,
		FechaFin:        r.FechaFin,
		Estado:          model.PrestamoEstadoActivo,
		Banco:           r.Banco,
		NumeroOperacion: r.NumeroOperacion,
		Notas:           r.Notas,
	}
}
