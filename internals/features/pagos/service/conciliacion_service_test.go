// file: internals/features/pagos/service/conciliacion_service_test.go
package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "github.com/dalp10/CobrosBackend/internals/databases"
	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	model "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	prestamoModel "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("no se pudo abrir sqlite en memoria: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migración falló: %v", err)
	}
	return db
}

func crearDeudor(t *testing.T, db *gorm.DB) deudorModel.DeudorModel {
	t.Helper()
	d := deudorModel.DeudorModel{Nombre: "Rosa", Apellidos: "Quispe", Activo: true}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("crear deudor: %v", err)
	}
	return d
}

func crearPrestamoConCuota(t *testing.T, db *gorm.DB, deudorID int, esperado string) (prestamoModel.PrestamoModel, prestamoModel.CuotaModel) {
	t.Helper()
	cuotaMensual := decimal.RequireFromString(esperado)
	p := prestamoModel.PrestamoModel{
		DeudorID:      deudorID,
		Tipo:          prestamoModel.PrestamoTipoPersonal,
		MontoOriginal: decimal.RequireFromString("6000.00"),
		TotalCuotas:   12,
		CuotaMensual:  &cuotaMensual,
		FechaInicio:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Estado:        prestamoModel.PrestamoEstadoActivo,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("crear préstamo: %v", err)
	}
	c := prestamoModel.CuotaModel{
		PrestamoID:       p.ID,
		NumeroCuota:      1,
		FechaVencimiento: p.FechaInicio,
		MontoEsperado:    cuotaMensual,
		MontoPagado:      decimal.Zero,
		Estado:           prestamoModel.CuotaEstadoPendiente,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("crear cuota: %v", err)
	}
	return p, c
}

func nuevoPago(deudorID int, prestamoID, cuotaID *int, monto string) *model.PagoModel {
	return &model.PagoModel{
		DeudorID:   deudorID,
		PrestamoID: prestamoID,
		CuotaID:    cuotaID,
		FechaPago:  time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Monto:      decimal.RequireFromString(monto),
		MetodoPago: model.MetodoYape,
	}
}

func cuotaActual(t *testing.T, db *gorm.DB, id int) prestamoModel.CuotaModel {
	t.Helper()
	var c prestamoModel.CuotaModel
	if err := db.First(&c, id).Error; err != nil {
		t.Fatalf("leer cuota %d: %v", id, err)
	}
	return c
}

func TestRegistrarPagoParcialLuegoCompleta(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)
	p, cuota := crearPrestamoConCuota(t, db, d.ID, "500.00")

	// primer abono: 200 de 500 → parcial
	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, &cuota.ID, "200")); err != nil {
		t.Fatalf("primer pago: %v", err)
	}
	c := cuotaActual(t, db, cuota.ID)
	if c.Estado != prestamoModel.CuotaEstadoParcial {
		t.Errorf("estado = %s, se esperaba parcial", c.Estado)
	}
	if !c.MontoPagado.Equal(decimal.RequireFromString("200")) {
		t.Errorf("monto_pagado = %s, se esperaba 200", c.MontoPagado)
	}

	// segundo abono completa la cuota
	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, &cuota.ID, "300")); err != nil {
		t.Fatalf("segundo pago: %v", err)
	}
	c = cuotaActual(t, db, cuota.ID)
	if c.Estado != prestamoModel.CuotaEstadoPagado {
		t.Errorf("estado = %s, se esperaba pagado", c.Estado)
	}
	if !c.MontoPagado.Equal(decimal.RequireFromString("500")) {
		t.Errorf("monto_pagado = %s, se esperaba 500", c.MontoPagado)
	}
}

func TestRegistrarPagoSobrepagoNoRevierte(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)
	p, cuota := crearPrestamoConCuota(t, db, d.ID, "500.00")

	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, &cuota.ID, "500")); err != nil {
		t.Fatalf("pago exacto: %v", err)
	}
	if c := cuotaActual(t, db, cuota.ID); c.Estado != prestamoModel.CuotaEstadoPagado {
		t.Fatalf("estado = %s, se esperaba pagado", c.Estado)
	}

	// un pago extra sobre una cuota ya pagada acumula y no cambia el estado
	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, &cuota.ID, "100")); err != nil {
		t.Fatalf("sobrepago: %v", err)
	}
	c := cuotaActual(t, db, cuota.ID)
	if c.Estado != prestamoModel.CuotaEstadoPagado {
		t.Errorf("estado = %s, el sobrepago no debe revertir 'pagado'", c.Estado)
	}
	if !c.MontoPagado.Equal(decimal.RequireFromString("600")) {
		t.Errorf("monto_pagado = %s, se esperaba 600", c.MontoPagado)
	}
}

func TestRegistrarPagoCuotaInexistenteSeOmite(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)
	p, _ := crearPrestamoConCuota(t, db, d.ID, "500.00")

	fantasma := 9999
	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, &fantasma, "250")); err != nil {
		t.Fatalf("el pago debía registrarse aunque la cuota no exista: %v", err)
	}

	var pagos int64
	db.Model(&model.PagoModel{}).Count(&pagos)
	if pagos != 1 {
		t.Errorf("pagos registrados = %d, se esperaba 1", pagos)
	}
}

func TestRegistrarPagoSinCuotaNoConcilia(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)
	p, cuota := crearPrestamoConCuota(t, db, d.ID, "500.00")

	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, nil, "300")); err != nil {
		t.Fatalf("pago libre: %v", err)
	}
	c := cuotaActual(t, db, cuota.ID)
	if c.Estado != prestamoModel.CuotaEstadoPendiente || !c.MontoPagado.IsZero() {
		t.Errorf("la cuota no debía tocarse: estado=%s pagado=%s", c.Estado, c.MontoPagado)
	}
}

func TestRegistrarPagoRollbackSiFallaConciliacion(t *testing.T) {
	db := abrirDB(t)
	d := crearDeudor(t, db)
	p, cuota := crearPrestamoConCuota(t, db, d.ID, "500.00")

	// forzamos el fallo de la conciliación tirando la tabla de cuotas
	if err := db.Migrator().DropTable(&prestamoModel.CuotaModel{}); err != nil {
		t.Fatalf("drop cuotas: %v", err)
	}

	if err := RegistrarPago(db, nuevoPago(d.ID, &p.ID, &cuota.ID, "250")); err == nil {
		t.Fatal("se esperaba error al conciliar sin tabla de cuotas")
	}

	// la transacción debe revertir también el insert del pago
	var pagos int64
	db.Model(&model.PagoModel{}).Count(&pagos)
	if pagos != 0 {
		t.Errorf("pagos registrados = %d, la transacción debía revertirse", pagos)
	}
}
