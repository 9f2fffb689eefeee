// file: internals/features/pagos/dto/pago_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	model "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
)

// Los pagos llegan por multipart/form-data (voucher opcional), así que los
// campos numéricos entran como texto y se normalizan a mano.

type CreatePagoRequest struct {
	DeudorID   int    `form:"deudor_id"`
	PrestamoID *int   `form:"prestamo_id"`
	CuotaID    *int   `form:"cuota_id"`
	FechaPago  string `form:"fecha_pago"` // YYYY-MM-DD
	Monto      string `form:"monto"`
	MetodoPago string `form:"metodo_pago"`

	NumeroOperacion *string `form:"numero_operacion"`
	BancoOrigen     *string `form:"banco_origen"`
	Concepto        *string `form:"concepto"`
	Notas           *string `form:"notas"`
}

type UpdatePagoRequest struct {
	FechaPago  string `form:"fecha_pago"`
	Monto      string `form:"monto"`
	MetodoPago string `form:"metodo_pago"`

	NumeroOperacion *string `form:"numero_operacion"`
	BancoOrigen     *string `form:"banco_origen"`
	Concepto        *string `form:"concepto"`
	Notas           *string `form:"notas"`

	// "true" → quitar el voucher sin subir uno nuevo
	RemoveImagen string `form:"remove_imagen"`
}

// PagoConNombres: fila del listado con nombres legibles
type PagoConNombres struct {
	model.PagoModel
	DeudorNombre string  `json:"deudor_nombre"`
	PrestamoDesc *string `json:"prestamo_desc,omitempty"`
}

var (
	ErrCamposRequeridos = errors.New("deudor_id, fecha_pago, monto y metodo_pago son requeridos")
	ErrMontoInvalido    = errors.New("monto debe ser un número mayor a 0")
	ErrFechaInvalida    = errors.New("fecha_pago debe tener formato YYYY-MM-DD")
	ErrMetodoInvalido   = errors.New("metodo_pago inválido")
)

// Validate + ToModel: normaliza los campos de texto del form.
func (r CreatePagoRequest) ToModel() (*model.PagoModel, error) {
	if r.DeudorID <= 0 || r.FechaPago == "" || r.Monto == "" || r.MetodoPago == "" {
		return nil, ErrCamposRequeridos
	}

	monto, fecha, metodo, err := parseCamposPago(r.Monto, r.FechaPago, r.MetodoPago)
	if err != nil {
		return nil, err
	}

	return &model.PagoModel{
		DeudorID:        r.DeudorID,
		PrestamoID:      r.PrestamoID,
		CuotaID:         r.CuotaID,
		FechaPago:       fecha,
		Monto:           monto,
		MetodoPago:      metodo,
		NumeroOperacion: r.NumeroOperacion,
		BancoOrigen:     r.BancoOrigen,
		Concepto:        r.Concepto,
		Notas:           r.Notas,
	}, nil
}

// Apply: edición de reemplazo total de campos (sin historial).
func (r UpdatePagoRequest) Apply(m *model.PagoModel) error {
	if r.FechaPago == "" || r.Monto == "" || r.MetodoPago == "" {
		return ErrCamposRequeridos
	}

	monto, fecha, metodo, err := parseCamposPago(r.Monto, r.FechaPago, r.MetodoPago)
	if err != nil {
		return err
	}

	m.FechaPago = fecha
	m.Monto = monto
	m.MetodoPago = metodo
	m.NumeroOperacion = r.NumeroOperacion
	m.BancoOrigen = r.BancoOrigen
	m.Concepto = r.Concepto
	m.Notas = r.Notas
	return nil
}

func parseCamposPago(montoRaw, fechaRaw, metodoRaw string) (decimal.Decimal, time.Time, model.MetodoPago, error) {
	monto, err := decimal.NewFromString(montoRaw)
	if err != nil || !monto.IsPositive() {
		return decimal.Decimal{}, time.Time{}, "", ErrMontoInvalido
	}

	fecha, err := time.Parse("2006-01-02", fechaRaw)
	if err != nil {
		return decimal.Decimal{}, time.Time{}, "", ErrFechaInvalida
	}

	metodo := model.MetodoPago(metodoRaw)
	if !metodo.Valido() {
		return decimal.Decimal{}, time.Time{}, "", ErrMetodoInvalido
	}

	return monto, fecha, metodo, nil
}
