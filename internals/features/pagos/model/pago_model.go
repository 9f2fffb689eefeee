// file: internals/features/pagos/model/pago_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"

	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	prestamoModel "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
	usuarioModel "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
)

// =========================================================
// ENUM — método de pago
// =========================================================

type MetodoPago string

const (
	MetodoEfectivo       MetodoPago = "efectivo"
	MetodoYape           MetodoPago = "yape"
	MetodoPlin           MetodoPago = "plin"
	MetodoTransferencia  MetodoPago = "transferencia"
	MetodoPandero        MetodoPago = "pandero"
	MetodoOtro           MetodoPago = "otro"
)

func (m MetodoPago) Valido() bool {
	switch m {
	case MetodoEfectivo, MetodoYape, MetodoPlin, MetodoTransferencia, MetodoPandero, MetodoOtro:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type PagoModel struct {
	ID       int `gorm:"primaryKey;autoIncrement" json:"id"`
	DeudorID int `gorm:"not null;index:idx_pagos_deudor" json:"deudor_id"`

	// Referencias opcionales: al borrar el préstamo o la cuota se anulan
	// (ON DELETE SET NULL), el pago se conserva.
	PrestamoID *int `gorm:"index:idx_pagos_prestamo" json:"prestamo_id,omitempty"`
	CuotaID    *int `json:"cuota_id,omitempty"`

	FechaPago time.Time       `gorm:"type:date;not null;index:idx_pagos_fecha" json:"fecha_pago"`
	Monto     decimal.Decimal `gorm:"type:numeric(12,2);not null;check:monto > 0" json:"monto"`
	MetodoPago MetodoPago     `gorm:"type:varchar(30);not null" json:"metodo_pago"`

	NumeroOperacion *string `gorm:"size:100" json:"numero_operacion,omitempty"`
	BancoOrigen     *string `gorm:"size:100" json:"banco_origen,omitempty"`
	Concepto        *string `gorm:"size:255" json:"concepto,omitempty"`
	Notas           *string `gorm:"type:text" json:"notas,omitempty"`

	// Voucher adjunto (solo referencia: URL + nombre original)
	ImagenURL    *string `gorm:"size:500" json:"imagen_url,omitempty"`
	ImagenNombre *string `gorm:"size:255" json:"imagen_nombre,omitempty"`

	RegistradoPor *int `json:"registrado_por,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Deudor   *deudorModel.DeudorModel       `gorm:"foreignKey:DeudorID;constraint:OnDelete:CASCADE" json:"-"`
	Prestamo *prestamoModel.PrestamoModel   `gorm:"foreignKey:PrestamoID;constraint:OnDelete:SET NULL" json:"-"`
	Cuota    *prestamoModel.CuotaModel      `gorm:"foreignKey:CuotaID;constraint:OnDelete:SET NULL" json:"-"`
	Usuario  *usuarioModel.UsuarioModel     `gorm:"foreignKey:RegistradoPor" json:"-"`
}

func (PagoModel) TableName() string {
	return "pagos"
}
