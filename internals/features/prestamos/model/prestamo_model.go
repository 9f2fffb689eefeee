// file: internals/features/prestamos/model/prestamo_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"

	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
)

// =========================================================
// ENUMS — tipo y estado del préstamo
// =========================================================

type PrestamoTipo string

const (
	PrestamoTipoPersonal PrestamoTipo = "prestamo_personal"
	PrestamoTipoBancario PrestamoTipo = "prestamo_bancario"
	PrestamoTipoPandero  PrestamoTipo = "pandero"
	PrestamoTipoOtro     PrestamoTipo = "otro"
)

type PrestamoEstado string

const (
	PrestamoEstadoActivo    PrestamoEstado = "activo"
	PrestamoEstadoPagado    PrestamoEstado = "pagado"
	PrestamoEstadoVencido   PrestamoEstado = "vencido"
	PrestamoEstadoCancelado PrestamoEstado = "cancelado"
)

func (e PrestamoEstado) Valido() bool {
	switch e {
	case PrestamoEstadoActivo, PrestamoEstadoPagado, PrestamoEstadoVencido, PrestamoEstadoCancelado:
		return true
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type PrestamoModel struct {
	ID       int          `gorm:"primaryKey;autoIncrement" json:"id"`
	DeudorID int          `gorm:"not null;index:idx_prestamos_deudor" json:"deudor_id"`
	Tipo     PrestamoTipo `gorm:"type:varchar(30);not null" json:"tipo"`

	Descripcion *string `gorm:"size:255" json:"descripcion,omitempty"`

	// Invariante: monto_original se fija al crear y nunca lo muta un pago.
	MontoOriginal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monto_original"`
	TasaInteres   decimal.Decimal `gorm:"type:numeric(6,4);default:0" json:"tasa_interes"`

	TotalCuotas  int              `gorm:"default:1" json:"total_cuotas"`
	CuotaMensual *decimal.Decimal `gorm:"type:numeric(12,2)" json:"cuota_mensual,omitempty"`

	FechaInicio time.Time  `gorm:"type:date;not null" json:"fecha_inicio"`
	FechaFin    *time.Time `gorm:"type:date" json:"fecha_fin,omitempty"`

	Estado PrestamoEstado `gorm:"type:varchar(20);not null;default:'activo'" json:"estado"`

	Banco           *string `gorm:"size:100" json:"banco,omitempty"`
	NumeroOperacion *string `gorm:"size:100" json:"numero_operacion,omitempty"`
	Notas           *string `gorm:"type:text" json:"notas,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Deudor *deudorModel.DeudorModel `gorm:"foreignKey:DeudorID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PrestamoModel) TableName() string {
	return "prestamos"
}
