// file: internals/features/prestamos/model/cuota_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// =========================================================
// ENUM — estado de la cuota
// =========================================================

type CuotaEstado string

const (
	CuotaEstadoPendiente CuotaEstado = "pendiente"
	CuotaEstadoPagado    CuotaEstado = "pagado"
	CuotaEstadoParcial   CuotaEstado = "parcial"
	CuotaEstadoVencido   CuotaEstado = "vencido"
)

// SiguienteEstado es la única función de transición del estado de una cuota
// al aplicar un pago. Una vez 'pagado' no se revierte: aplicar más dinero
// la deja en 'pagado' (sobrepago permitido, sin tope).
func SiguienteEstado(actual CuotaEstado, pagado, esperado decimal.Decimal) CuotaEstado {
	if actual == CuotaEstadoPagado {
		return CuotaEstadoPagado
	}
	if pagado.GreaterThanOrEqual(esperado) {
		return CuotaEstadoPagado
	}
	return CuotaEstadoParcial
}

// =========================================================
// MODEL
// =========================================================

type CuotaModel struct {
	ID          int `gorm:"primaryKey;autoIncrement" json:"id"`
	PrestamoID  int `gorm:"not null;index:idx_cuotas_prestamo;uniqueIndex:uq_cuotas_prestamo_numero,priority:1" json:"prestamo_id"`
	NumeroCuota int `gorm:"not null;uniqueIndex:uq_cuotas_prestamo_numero,priority:2" json:"numero_cuota"`

	FechaVencimiento time.Time `gorm:"type:date;not null" json:"fecha_vencimiento"`

	MontoEsperado decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monto_esperado"`
	// monto_pagado puede superar monto_esperado (sobrepago); el estado se
	// deriva exclusivamente de comparar pagado vs esperado.
	MontoPagado decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"monto_pagado"`

	Estado CuotaEstado `gorm:"type:varchar(20);not null;default:'pendiente'" json:"estado"`

	// Pandero: una cuota puede ser la del premio (bono de fondo rotatorio)
	EsPremioPandero bool             `gorm:"not null;default:false" json:"es_premio_pandero"`
	MontoPremio     *decimal.Decimal `gorm:"type:numeric(12,2)" json:"monto_premio,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Prestamo *PrestamoModel `gorm:"foreignKey:PrestamoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CuotaModel) TableName() string {
	return "cuotas"
}
