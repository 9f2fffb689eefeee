// file: internals/features/pagos/service/resumen_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	model "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
)

func pagoEn(t *testing.T, db *gorm.DB, deudorID int, fecha string, monto string, metodo model.MetodoPago) {
	t.Helper()
	f, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		t.Fatalf("fecha de prueba inválida %q: %v", fecha, err)
	}
	p := model.PagoModel{
		DeudorID:   deudorID,
		FechaPago:  f,
		Monto:      decimal.RequireFromString(monto),
		MetodoPago: metodo,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("insertar pago: %v", err)
	}
}

func TestResumenPorMetodoOrdenaPorTotal(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)

	pagoEn(t, db, d.ID, "2026-01-10", "100", model.MetodoEfectivo)
	pagoEn(t, db, d.ID, "2026-01-20", "25", model.MetodoEfectivo)
	pagoEn(t, db, d.ID, "2026-02-01", "50", model.MetodoYape)

	rows, err := ResumenPorMetodo(db)
	if err != nil {
		t.Fatalf("ResumenPorMetodo: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, se esperaban 2 métodos", len(rows))
	}
	if rows[0].MetodoPago != "efectivo" || rows[0].Cantidad != 2 || !rows[0].Total.Equal(decimal.RequireFromString("125")) {
		t.Errorf("fila 0 = %+v, se esperaba efectivo/2/125", rows[0])
	}
	if rows[1].MetodoPago != "yape" || rows[1].Cantidad != 1 || !rows[1].Total.Equal(decimal.RequireFromString("50")) {
		t.Errorf("fila 1 = %+v, se esperaba yape/1/50", rows[1])
	}
}

func TestResumenPorMesRecientesPrimero(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)

	pagoEn(t, db, d.ID, "2025-12-07", "500", model.MetodoYape)
	pagoEn(t, db, d.ID, "2026-01-14", "300", model.MetodoYape)
	pagoEn(t, db, d.ID, "2026-01-15", "500", model.MetodoPandero)

	rows, err := ResumenPorMes(db, 0) // 0 → usa el default de 12
	if err != nil {
		t.Fatalf("ResumenPorMes: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, se esperaban 2 meses", len(rows))
	}
	if rows[0].Mes != "2026-01" || rows[0].Pagos != 2 || !rows[0].Total.Equal(decimal.RequireFromString("800")) {
		t.Errorf("fila 0 = %+v, se esperaba 2026-01/2/800", rows[0])
	}
	if rows[1].Mes != "2025-12" || !rows[1].Total.Equal(decimal.RequireFromString("500")) {
		t.Errorf("fila 1 = %+v, se esperaba 2025-12/500", rows[1])
	}
}

func TestResumenPorMesRespetaLimite(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)

	pagoEn(t, db, d.ID, "2025-10-01", "100", model.MetodoEfectivo)
	pagoEn(t, db, d.ID, "2025-11-01", "100", model.MetodoEfectivo)
	pagoEn(t, db, d.ID, "2025-12-01", "100", model.MetodoEfectivo)

	rows, err := ResumenPorMes(db, 2)
	if err != nil {
		t.Fatalf("ResumenPorMes: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, se esperaban 2 meses", len(rows))
	}
	if rows[0].Mes != "2025-12" || rows[1].Mes != "2025-11" {
		t.Errorf("orden = [%s %s], se esperaba el más reciente primero", rows[0].Mes, rows[1].Mes)
	}
}

func TestResumenPorDeudorExcluyeInactivos(t *testing.T) {
	db := abrirDB(t)

	activo := deudorModel.DeudorModel{Nombre: "Pedro", Apellidos: "Reátegui", Activo: true}
	inactivo := deudorModel.DeudorModel{Nombre: "Luis", Apellidos: "Zapata", Activo: false}
	for _, d := range []*deudorModel.DeudorModel{&activo, &inactivo} {
		if err := db.Create(d).Error; err != nil {
			t.Fatalf("crear deudor: %v", err)
		}
	}
	pagoEn(t, db, activo.ID, "2026-01-10", "200", model.MetodoYape)
	pagoEn(t, db, inactivo.ID, "2026-01-11", "999", model.MetodoYape)

	rows, err := ResumenPorDeudor(db)
	if err != nil {
		t.Fatalf("ResumenPorDeudor: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, el deudor inactivo no debía listarse", len(rows))
	}
	if rows[0].Nombre != "Pedro Reátegui" {
		t.Errorf("nombre = %q, se esperaba el nombre completo concatenado", rows[0].Nombre)
	}
	if !rows[0].TotalPagado.Equal(decimal.RequireFromString("200")) || rows[0].NumPagos != 1 {
		t.Errorf("fila = %+v, se esperaba total 200 con 1 pago", rows[0])
	}
}

func TestTotalesGlobalesSinDatos(t *testing.T) {
	db := abrirDB(t)

	tot, err := TotalesGlobales(db)
	if err != nil {
		t.Fatalf("TotalesGlobales: %v", err)
	}
	if !tot.TotalCobrado.IsZero() || !tot.TotalPrestado.IsZero() {
		t.Errorf("totales = %+v, sin datos deben ser cero", tot)
	}
}

func TestTotalesGlobales(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)
	crearPrestamoConCuota(t, db, d.ID, "500.00") // monto_original 6000

	pagoEn(t, db, d.ID, "2026-01-10", "150.50", model.MetodoYape)
	pagoEn(t, db, d.ID, "2026-02-10", "49.50", model.MetodoEfectivo)

	tot, err := TotalesGlobales(db)
	if err != nil {
		t.Fatalf("TotalesGlobales: %v", err)
	}
	if !tot.TotalCobrado.Equal(decimal.RequireFromString("200")) {
		t.Errorf("total_cobrado = %s, se esperaba 200", tot.TotalCobrado)
	}
	if !tot.TotalPrestado.Equal(decimal.RequireFromString("6000")) {
		t.Errorf("total_prestado = %s, se esperaba 6000", tot.TotalPrestado)
	}
}
