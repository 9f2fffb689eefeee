// file: internals/features/pagos/service/conciliacion_service.go
package service

import (
	"errors"

	"gorm.io/gorm"

	model "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	prestamoModel "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
)

// RegistrarPago inserta el pago y, si referencia una cuota, le aplica el
// monto dentro de la MISMA transacción: o persisten ambos o ninguno.
//
// Si la cuota referenciada no existe, la conciliación se omite en
// silencio y el pago igual queda registrado (caso tolerado).
func RegistrarPago(db *gorm.DB, pago *model.PagoModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pago).Error; err != nil {
			return err
		}
		if pago.CuotaID == nil {
			return nil
		}
		return conciliarCuota(tx, *pago.CuotaID, pago)
	})
}

// conciliarCuota acumula el monto pagado sobre la cuota y deriva el nuevo
// estado. Una cuota 'pagado' nunca vuelve a 'parcial'/'pendiente' por esta
// vía; el sobrepago simplemente la deja en 'pagado'.
func conciliarCuota(tx *gorm.DB, cuotaID int, pago *model.PagoModel) error {
	var cuota prestamoModel.CuotaModel
	if err := tx.First(&cuota, cuotaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// cuota inexistente: se registra el pago sin conciliar
			return nil
		}
		return err
	}

	nuevoPagado := cuota.MontoPagado.Add(pago.Monto)
	nuevoEstado := prestamoModel.SiguienteEstado(cuota.Estado, nuevoPagado, cuota.MontoEsperado)

	return tx.Model(&prestamoModel.CuotaModel{}).
		Where("id = ?", cuotaID).
		Updates(map[string]any{
			"monto_pagado": nuevoPagado,
			"estado":       nuevoEstado,
		}).Error
}
