// file: internals/features/pagos/service/resumen_service.go
package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
)

/* =======================================================================
   Agregados para el dashboard (GET /pagos/resumen)
======================================================================= */

type ResumenMetodo struct {
	MetodoPago string          `json:"metodo_pago"`
	Cantidad   int64           `json:"cantidad"`
	Total      decimal.Decimal `json:"total"`
}

type ResumenMes struct {
	Mes   string          `json:"mes"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
	Pagos int64           `json:"pagos"`
}

type ResumenDeudor struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	TotalPagado decimal.Decimal `json:"total_pagado"`
	TotalPrestado decimal.Decimal `json:"total_prestado"`
	UltimoPago  *time.Time      `json:"ultimo_pago,omitempty"`
	NumPagos    int64           `json:"num_pagos"`
}

type Totales struct {
	TotalCobrado  decimal.Decimal `json:"total_cobrado"`
	TotalPrestado decimal.Decimal `json:"total_prestado"`
}

// ResumenPorMetodo agrupa todos los pagos por método, ordenado por total
// descendente.
func ResumenPorMetodo(db *gorm.DB) ([]ResumenMetodo, error) {
	var rows []ResumenMetodo
	err := db.Model(&model.PagoModel{}).
		Select("metodo_pago, COUNT(*) AS cantidad, SUM(monto) AS total").
		Group("metodo_pago").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

// ResumenPorMes agrupa por mes calendario, los `limit` meses más
// recientes primero.
func ResumenPorMes(db *gorm.DB, limit int) ([]ResumenMes, error) {
	if limit <= 0 {
		limit = 12
	}
	mes := "TO_CHAR(fecha_pago, 'YYYY-MM')"
	if db.Dialector.Name() == "sqlite" {
		mes = "strftime('%Y-%m', fecha_pago)"
	}

	var rows []ResumenMes
	err := db.Model(&model.PagoModel{}).
		Select(mes + " AS mes, SUM(monto) AS total, COUNT(*) AS pagos").
		Group("mes").
		Order("mes DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ResumenPorDeudor: totales por deudor activo.
func ResumenPorDeudor(db *gorm.DB) ([]ResumenDeudor, error) {
	var rows []ResumenDeudor
	err := db.Table("deudores d").
		Select(`d.id,
			d.nombre || ' ' || d.apellidos AS nombre,
			COALESCE((SELECT SUM(p.monto) FROM pagos p WHERE p.deudor_id = d.id), 0)            AS total_pagado,
			COALESCE((SELECT SUM(pr.monto_original) FROM prestamos pr WHERE pr.deudor_id = d.id), 0) AS total_prestado,
			(SELECT MAX(p.fecha_pago) FROM pagos p WHERE p.deudor_id = d.id)                    AS ultimo_pago,
			(SELECT COUNT(*) FROM pagos p WHERE p.deudor_id = d.id)                             AS num_pagos`).
		Where("d.activo = ?", true).
		Order("d.apellidos").
		Scan(&rows).Error
	return rows, err
}

// TotalesGlobales: todo lo cobrado vs. todo lo prestado.
func TotalesGlobales(db *gorm.DB) (Totales, error) {
	var t Totales

	var cobrado decimal.NullDecimal
	if err := db.Model(&model.PagoModel{}).
		Select("SUM(monto)").
		Scan(&cobrado).Error; err != nil {
		return t, err
	}
	if cobrado.Valid {
		t.TotalCobrado = cobrado.Decimal
	} else {
		t.TotalCobrado = decimal.Zero
	}

	var prestado decimal.NullDecimal
	if err := db.Table("prestamos").
		Select("SUM(monto_original)").
		Scan(&prestado).Error; err != nil {
		return t, err
	}
	if prestado.Valid {
		t.TotalPrestado = prestado.Decimal
	} else {
		t.TotalPrestado = decimal.Zero
	}

	return t, nil
}
