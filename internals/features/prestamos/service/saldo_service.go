// file: internals/features/prestamos/service/saldo_service.go
package service

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	pagoModel "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	model "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
)

// SaldoPrestamo: totales de un préstamo. El saldo puede quedar negativo
// (sobrepago) y no se recorta.
type SaldoPrestamo struct {
	TotalPagado      decimal.Decimal `json:"total_pagado"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	CuotasPagadas    int64           `json:"cuotas_pagadas"`
	CuotasPendientes int64           `json:"cuotas_pendientes"`
}

// CalcularSaldo computa el resumen de un préstamo sobre una misma vista
// de lectura: total pagado, saldo contra el principal fijo y conteo de
// cuotas pagadas vs. no pagadas.
func CalcularSaldo(db *gorm.DB, prestamo *model.PrestamoModel) (SaldoPrestamo, error) {
	var s SaldoPrestamo

	var totalPagado decimal.NullDecimal
	if err := db.Model(&pagoModel.PagoModel{}).
		Select("SUM(monto)").
		Where("prestamo_id = ?", prestamo.ID).
		Scan(&totalPagado).Error; err != nil {
		return s, err
	}
	if totalPagado.Valid {
		s.TotalPagado = totalPagado.Decimal
	} else {
		s.TotalPagado = decimal.Zero
	}

	// el principal nunca se muta por actividad de pagos
	s.SaldoPendiente = prestamo.MontoOriginal.Sub(s.TotalPagado)

	if err := db.Model(&model.CuotaModel{}).
		Where("prestamo_id = ? AND estado = ?", prestamo.ID, model.CuotaEstadoPagado).
		Count(&s.CuotasPagadas).Error; err != nil {
		return s, err
	}
	if err := db.Model(&model.CuotaModel{}).
		Where("prestamo_id = ? AND estado <> ?", prestamo.ID, model.CuotaEstadoPagado).
		Count(&s.CuotasPendientes).Error; err != nil {
		return s, err
	}

	return s, nil
}
