// file: internals/features/deudores/dto/deudor_detalle_dto.go
package dto

import (
	"github.com/shopspring/decimal"

	model "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	pagoModel "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	prestamoModel "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
)

// ResumenPagosDeudor: agregado de pagos del deudor
type ResumenPagosDeudor struct {
	TotalPagado decimal.Decimal `json:"total_pagado"`
	TotalPagos  int64           `json:"total_pagos"`
}

// DeudorDetalle: deudor + préstamos + pagos + resumen (GET /deudores/:id)
type DeudorDetalle struct {
	model.DeudorModel
	Prestamos []prestamoModel.PrestamoModel `json:"prestamos"`
	Pagos     []pagoModel.PagoModel         `json:"pagos"`
	Resumen   ResumenPagosDeudor            `json:"resumen"`
}
