// file: internals/features/prestamos/service/cronograma_service.go
package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
)

// GenerarCronograma crea las cuotas mensuales de un préstamo recién creado:
// total_cuotas filas desde fecha_inicio, una por mes, todas pendientes.
// Si cuotaPremio > 0 (pandero), esa cuota se marca como la del premio y
// lleva el monto del bono.
func GenerarCronograma(tx *gorm.DB, prestamo *model.PrestamoModel, cuotaPremio int, montoPremio *decimal.Decimal) ([]model.CuotaModel, error) {
	if prestamo.TotalCuotas <= 0 || prestamo.CuotaMensual == nil {
		return nil, nil
	}

	cuotas := make([]model.CuotaModel, 0, prestamo.TotalCuotas)
	for i := 1; i <= prestamo.TotalCuotas; i++ {
		c := model.CuotaModel{
			PrestamoID:       prestamo.ID,
			NumeroCuota:      i,
			FechaVencimiento: prestamo.FechaInicio.AddDate(0, i-1, 0),
			MontoEsperado:    *prestamo.CuotaMensual,
			MontoPagado:      decimal.Zero,
			Estado:           model.CuotaEstadoPendiente,
		}
		if prestamo.Tipo == model.PrestamoTipoPandero && i == cuotaPremio {
			c.EsPremioPandero = true
			c.MontoPremio = montoPremio
		}
		cuotas = append(cuotas, c)
	}

	if err := tx.Create(&cuotas).Error; err != nil {
		return nil, err
	}
	return cuotas, nil
}

// ProximoVencimiento devuelve la fecha de la primera cuota no pagada,
// o nil si todas están al día.
func ProximoVencimiento(db *gorm.DB, prestamoID int) (*time.Time, error) {
	var cuota model.CuotaModel
	err := db.Where("prestamo_id = ? AND estado <> ?", prestamoID, model.CuotaEstadoPagado).
		Order("numero_cuota").
		First(&cuota).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cuota.FechaVencimiento, nil
}
