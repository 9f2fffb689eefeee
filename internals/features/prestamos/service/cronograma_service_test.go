// file: internals/features/prestamos/service/cronograma_service_test.go
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
	model "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
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

func crearPrestamo(t *testing.T, db *gorm.DB, tipo model.PrestamoTipo, totalCuotas int, cuotaMensual string) *model.PrestamoModel {
	t.Helper()
	d := deudorModel.DeudorModel{Nombre: "Maritza", Apellidos: "Paredes", Activo: true}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("crear deudor: %v", err)
	}
	p := &model.PrestamoModel{
		DeudorID:      d.ID,
		Tipo:          tipo,
		MontoOriginal: decimal.RequireFromString("6000.00"),
		TotalCuotas:   totalCuotas,
		FechaInicio:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Estado:        model.PrestamoEstadoActivo,
	}
	if cuotaMensual != "" {
		cm := decimal.RequireFromString(cuotaMensual)
		p.CuotaMensual = &cm
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("crear préstamo: %v", err)
	}
	return p
}

func TestGenerarCronogramaMensual(t *testing.T) {
	db := abrirDB(t)
	p := crearPrestamo(t, db, model.PrestamoTipoBancario, 12, "500.00")

	cuotas, err := GenerarCronograma(db, p, 0, nil)
	if err != nil {
		t.Fatalf("GenerarCronograma: %v", err)
	}
	if len(cuotas) != 12 {
		t.Fatalf("len = %d, se esperaban 12 cuotas", len(cuotas))
	}

	for i, c := range cuotas {
		if c.NumeroCuota != i+1 {
			t.Errorf("cuota %d con numero_cuota %d", i, c.NumeroCuota)
		}
		quiere := p.FechaInicio.AddDate(0, i, 0)
		if !c.FechaVencimiento.Equal(quiere) {
			t.Errorf("cuota %d vence %s, se esperaba %s", c.NumeroCuota, c.FechaVencimiento, quiere)
		}
		if c.Estado != model.CuotaEstadoPendiente || !c.MontoPagado.IsZero() {
			t.Errorf("cuota %d debía nacer pendiente y en cero", c.NumeroCuota)
		}
		if !c.MontoEsperado.Equal(decimal.RequireFromString("500.00")) {
			t.Errorf("cuota %d esperado %s", c.NumeroCuota, c.MontoEsperado)
		}
	}

	var persistidas int64
	db.Model(&model.CuotaModel{}).Where("prestamo_id = ?", p.ID).Count(&persistidas)
	if persistidas != 12 {
		t.Errorf("persistidas = %d, se esperaban 12", persistidas)
	}
}

func TestGenerarCronogramaPanderoMarcaPremio(t *testing.T) {
	db := abrirDB(t)
	p := crearPrestamo(t, db, model.PrestamoTipoPandero, 12, "500.00")

	premio := decimal.RequireFromString("6000.00")
	cuotas, err := GenerarCronograma(db, p, 9, &premio)
	if err != nil {
		t.Fatalf("GenerarCronograma: %v", err)
	}

	for _, c := range cuotas {
		esPremio := c.NumeroCuota == 9
		if c.EsPremioPandero != esPremio {
			t.Errorf("cuota %d: es_premio_pandero = %v", c.NumeroCuota, c.EsPremioPandero)
		}
		if esPremio && (c.MontoPremio == nil || !c.MontoPremio.Equal(premio)) {
			t.Errorf("cuota 9 sin monto_premio 6000: %+v", c.MontoPremio)
		}
	}
}

func TestGenerarCronogramaSinCuotaMensual(t *testing.T) {
	db := abrirDB(t)
	// préstamo de abonos libres: sin cuota mensual no hay cronograma
	p := crearPrestamo(t, db, model.PrestamoTipoPersonal, 1, "")

	cuotas, err := GenerarCronograma(db, p, 0, nil)
	if err != nil {
		t.Fatalf("GenerarCronograma: %v", err)
	}
	if len(cuotas) != 0 {
		t.Errorf("len = %d, sin cuota_mensual no deben generarse cuotas", len(cuotas))
	}
}

func TestProximoVencimiento(t *testing.T) {
	db := abrirDB(t)
	p := crearPrestamo(t, db, model.PrestamoTipoBancario, 3, "500.00")

	cuotas, err := GenerarCronograma(db, p, 0, nil)
	if err != nil {
		t.Fatalf("GenerarCronograma: %v", err)
	}

	// la primera cuota se paga; la próxima pendiente es la 2
	if err := db.Model(&model.CuotaModel{}).
		Where("id = ?", cuotas[0].ID).
		Updates(map[string]any{"estado": model.CuotaEstadoPagado, "monto_pagado": "500.00"}).Error; err != nil {
		t.Fatalf("marcar cuota pagada: %v", err)
	}

	prox, err := ProximoVencimiento(db, p.ID)
	if err != nil {
		t.Fatalf("ProximoVencimiento: %v", err)
	}
	if prox == nil {
		t.Fatal("prox = nil, se esperaba la cuota 2")
	}
	quiere := p.FechaInicio.AddDate(0, 1, 0)
	if !prox.Equal(quiere) {
		t.Errorf("prox = %s, se esperaba %s", prox, quiere)
	}

	// todas pagadas → nil
	if err := db.Model(&model.CuotaModel{}).
		Where("prestamo_id = ?", p.ID).
		Update("estado", model.CuotaEstadoPagado).Error; err != nil {
		t.Fatalf("marcar todas pagadas: %v", err)
	}
	prox, err = ProximoVencimiento(db, p.ID)
	if err != nil {
		t.Fatalf("ProximoVencimiento: %v", err)
	}
	if prox != nil {
		t.Errorf("prox = %s, con todo pagado debía ser nil", prox)
	}
}
