// file: internals/seeds/seed_datos_iniciales.go
package seeds

import (
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	pagoModel "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	prestamoModel "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("seed: fecha inválida " + s)
	}
	return t
}

func fechaPtr(s string) *time.Time {
	t := fecha(s)
	return &t
}

func str(s string) *string {
	return &s
}

type pagoSeed struct {
	fecha    string
	monto    string
	metodo   pagoModel.MetodoPago
	op       string
	concepto string
	banco    string
}

// SeedDatosIniciales inserta los deudores, préstamos, cuotas y pagos
// extraídos de los cuadernos y vouchers. Todo dentro de una transacción.
func SeedDatosIniciales(db *gorm.DB) error {
	var existente deudorModel.DeudorModel
	err := db.Where("nombre = ? AND apellidos = ?", "Maritza", "Paredes Piña").First(&existente).Error
	if err == nil {
		log.Println("ℹ️ Seed de datos ya ejecutado anteriormente, se omite.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// ── DEUDORES ─────────────────────────────────────────────
		maritza := deudorModel.DeudorModel{Nombre: "Maritza", Apellidos: "Paredes Piña", Notas: str("Préstamo BanBif + Pandero activo"), Activo: true}
		pedro := deudorModel.DeudorModel{Nombre: "Pedro", Apellidos: "Reátegui Carpi", Notas: str("Préstamo personal"), Activo: true}
		miguel := deudorModel.DeudorModel{Nombre: "Miguel", Apellidos: "Ríos", Notas: str("Cuotas variables registradas en cuaderno"), Activo: true}
		annie := deudorModel.DeudorModel{Nombre: "Annie", Apellidos: "Muñoz", Notas: str("Pagos vía Interbank"), Activo: true}
		for _, d := range []*deudorModel.DeudorModel{&maritza, &pedro, &miguel, &annie} {
			if err := tx.Create(d).Error; err != nil {
				return err
			}
		}

		// ── PRÉSTAMO MARITZA - BanBif ────────────────────────────
		banbif := prestamoModel.PrestamoModel{
			DeudorID:        maritza.ID,
			Tipo:            prestamoModel.PrestamoTipoBancario,
			Descripcion:     str("Préstamo Personal BanBif"),
			MontoOriginal:   dec("40000.00"),
			TasaInteres:     dec("0.3737"),
			TotalCuotas:     48,
			CuotaMensual:    decPtr("1506.13"),
			FechaInicio:     fecha("2023-04-01"),
			FechaFin:        fechaPtr("2027-04-01"),
			Estado:          prestamoModel.PrestamoEstadoActivo,
			Banco:           str("BanBif"),
			NumeroOperacion: str("241101778500"),
		}
		if err := tx.Create(&banbif).Error; err != nil {
			return err
		}

		// 48 cuotas desde abril 2023; las primeras 23 figuran pagadas.
		for i := 1; i <= 48; i++ {
			cuota := prestamoModel.CuotaModel{
				PrestamoID:       banbif.ID,
				NumeroCuota:      i,
				FechaVencimiento: fecha("2023-04-01").AddDate(0, i-1, 0),
				MontoEsperado:    dec("1506.13"),
				MontoPagado:      decimal.Zero,
				Estado:           prestamoModel.CuotaEstadoPendiente,
			}
			if i <= 23 {
				cuota.MontoPagado = dec("1506.13")
				cuota.Estado = prestamoModel.CuotaEstadoPagado
			}
			if err := tx.Create(&cuota).Error; err != nil {
				return err
			}
		}

		// ── PRÉSTAMO MARITZA - Pandero ───────────────────────────
		pandero := prestamoModel.PrestamoModel{
			DeudorID:      maritza.ID,
			Tipo:          prestamoModel.PrestamoTipoPandero,
			Descripcion:   str("Pandero 12 meses"),
			MontoOriginal: dec("6000.00"),
			TotalCuotas:   12,
			CuotaMensual:  decPtr("500.00"),
			FechaInicio:   fecha("2025-10-15"),
			FechaFin:      fechaPtr("2026-09-15"),
			Estado:        prestamoModel.PrestamoEstadoActivo,
			Notas:         str("Premio de S/6,000 en junio 2026 (mes 9)"),
		}
		if err := tx.Create(&pandero).Error; err != nil {
			return err
		}

		// 12 meses; pagados los primeros 5; el mes 9 lleva el premio.
		for i := 1; i <= 12; i++ {
			cuota := prestamoModel.CuotaModel{
				PrestamoID:       pandero.ID,
				NumeroCuota:      i,
				FechaVencimiento: fecha("2025-10-15").AddDate(0, i-1, 0),
				MontoEsperado:    dec("500.00"),
				MontoPagado:      decimal.Zero,
				Estado:           prestamoModel.CuotaEstadoPendiente,
			}
			if i <= 5 {
				cuota.MontoPagado = dec("500.00")
				cuota.Estado = prestamoModel.CuotaEstadoPagado
			}
			if i == 9 {
				cuota.EsPremioPandero = true
				cuota.MontoPremio = decPtr("6000.00")
			}
			if err := tx.Create(&cuota).Error; err != nil {
				return err
			}
		}

		// ── PRÉSTAMOS SIN CRONOGRAMA (abonos libres) ─────────────
		loanPedro := prestamoModel.PrestamoModel{
			DeudorID:      pedro.ID,
			Tipo:          prestamoModel.PrestamoTipoPersonal,
			Descripcion:   str("Préstamo personal (1000+2000+300)"),
			MontoOriginal: dec("3300.00"),
			TotalCuotas:   1,
			FechaInicio:   fecha("2021-03-28"),
			Estado:        prestamoModel.PrestamoEstadoActivo,
		}
		loanMiguel := prestamoModel.PrestamoModel{
			DeudorID:      miguel.ID,
			Tipo:          prestamoModel.PrestamoTipoPersonal,
			Descripcion:   str("Préstamo personal Lena Mayan"),
			MontoOriginal: dec("3600.00"),
			TotalCuotas:   1,
			FechaInicio:   fecha("2024-01-01"),
			Estado:        prestamoModel.PrestamoEstadoActivo,
		}
		loanAnnie := prestamoModel.PrestamoModel{
			DeudorID:      annie.ID,
			Tipo:          prestamoModel.PrestamoTipoPersonal,
			Descripcion:   str("Préstamo personal"),
			MontoOriginal: dec("4052.26"),
			TotalCuotas:   1,
			FechaInicio:   fecha("2026-01-13"),
			Estado:        prestamoModel.PrestamoEstadoActivo,
		}
		for _, p := range []*prestamoModel.PrestamoModel{&loanPedro, &loanMiguel, &loanAnnie} {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		// ── PAGOS MARITZA (Yape + pandero) ───────────────────────
		pagosMaritza := []pagoSeed{
			{"2025-12-07", "500", pagoModel.MetodoYape, "08189990", "Abono cuota BanBif", ""},
			{"2026-01-14", "300", pagoModel.MetodoYape, "18135629", "Abono cuota BanBif", ""},
			{"2026-02-05", "200", pagoModel.MetodoYape, "22467785", "Abono cuota BanBif", ""},
			{"2025-10-15", "500", pagoModel.MetodoPandero, "-", "Pandero Oct 2025", ""},
			{"2025-11-15", "500", pagoModel.MetodoPandero, "-", "Pandero Nov 2025", ""},
			{"2025-12-15", "500", pagoModel.MetodoPandero, "-", "Pandero Dic 2025", ""},
			{"2026-01-15", "500", pagoModel.MetodoPandero, "-", "Pandero Ene 2026", ""},
			{"2026-02-15", "500", pagoModel.MetodoPandero, "-", "Pandero Feb 2026", ""},
		}
		for _, p := range pagosMaritza {
			prestamoID := banbif.ID
			if p.metodo == pagoModel.MetodoPandero {
				prestamoID = pandero.ID
			}
			if err := insertarPagoSeed(tx, maritza.ID, prestamoID, p); err != nil {
				return err
			}
		}

		// ── PAGOS PEDRO ──────────────────────────────────────────
		pagosPedro := []pagoSeed{
			{"2024-07-06", "300", pagoModel.MetodoEfectivo, "-", "Abono #3", ""},
			{"2024-08-12", "200", pagoModel.MetodoEfectivo, "-", "Abono #4", ""},
			{"2024-08-24", "200", pagoModel.MetodoEfectivo, "-", "Abono #5", ""},
			{"2024-09-17", "200", pagoModel.MetodoEfectivo, "-", "Abono #6", ""},
			{"2024-10-23", "100", pagoModel.MetodoEfectivo, "-", "Abono #7", ""},
			{"2024-10-31", "200", pagoModel.MetodoEfectivo, "-", "Abono #8", ""},
			{"2024-11-11", "100", pagoModel.MetodoEfectivo, "-", "Abono #9", ""},
			{"2024-11-19", "150", pagoModel.MetodoEfectivo, "-", "Abono #10", ""},
			{"2024-12-10", "150", pagoModel.MetodoEfectivo, "-", "Abono #11", ""},
			{"2024-12-22", "200", pagoModel.MetodoEfectivo, "-", "Abono #12", ""},
			{"2025-01-02", "150", pagoModel.MetodoEfectivo, "-", "Abono #13", ""},
			{"2025-01-19", "200", pagoModel.MetodoYape, "15704251", "Abono Yape", ""},
			{"2025-02-02", "200", pagoModel.MetodoYape, "17914939", "Abono Yape", ""},
			{"2025-02-09", "200", pagoModel.MetodoYape, "13736653", "Abono Yape", ""},
			{"2025-03-09", "200", pagoModel.MetodoYape, "11294692", "Abono Yape", ""},
			{"2025-03-24", "150", pagoModel.MetodoYape, "05116599", "Abono Yape", ""},
			{"2025-04-20", "200", pagoModel.MetodoYape, "12903445", "Abono Yape", ""},
			{"2025-05-11", "150", pagoModel.MetodoYape, "16329360", "Abono Yape", ""},
			{"2025-05-27", "100", pagoModel.MetodoYape, "01673408", "Abono Yape", ""},
			{"2025-06-26", "150", pagoModel.MetodoYape, "18431474", "Abono Yape", ""},
			{"2025-07-24", "100", pagoModel.MetodoYape, "08395950", "Abono Yape", ""},
			{"2025-08-18", "150", pagoModel.MetodoYape, "04046922", "Abono Yape", ""},
			{"2025-09-21", "150", pagoModel.MetodoYape, "18619440", "Abono Yape", ""},
			{"2025-10-06", "100", pagoModel.MetodoYape, "10497510", "Abono Yape", ""},
			{"2025-10-26", "15", pagoModel.MetodoYape, "24832056", "Abono Yape", ""},
			{"2025-10-26", "135", pagoModel.MetodoYape, "24949372", "Abono Yape", ""},
			{"2025-11-24", "150", pagoModel.MetodoYape, "19321300", "Abono Yape", ""},
			{"2025-12-14", "150", pagoModel.MetodoYape, "10499925", "Abono Yape", ""},
			{"2025-12-19", "300", pagoModel.MetodoYape, "21363725", "Abono Yape", ""},
			{"2025-12-19", "200", pagoModel.MetodoYape, "25872899", "Abono Yape", ""},
			{"2026-01-11", "200", pagoModel.MetodoYape, "19714059", "Abono Yape", ""},
			{"2026-02-01", "200", pagoModel.MetodoYape, "14869100", "Abono Yape", ""},
		}
		for _, p := range pagosPedro {
			if err := insertarPagoSeed(tx, pedro.ID, loanPedro.ID, p); err != nil {
				return err
			}
		}

		// ── PAGOS MIGUEL ─────────────────────────────────────────
		pagosMiguel := []pagoSeed{
			{"2024-01-01", "600", pagoModel.MetodoEfectivo, "-", "Pago #1", ""},
			{"2024-02-01", "650", pagoModel.MetodoEfectivo, "-", "Pago #2", ""},
			{"2024-03-01", "650", pagoModel.MetodoEfectivo, "-", "Pago #3", ""},
			{"2024-08-03", "600", pagoModel.MetodoEfectivo, "-", "Pago #4", ""},
			{"2024-09-17", "400", pagoModel.MetodoEfectivo, "-", "Pago #5", ""},
			{"2024-11-09", "600", pagoModel.MetodoEfectivo, "-", "Pago #6", ""},
			{"2025-01-08", "500", pagoModel.MetodoYape, "01892500", "Pago Yape", ""},
			{"2025-08-01", "600", pagoModel.MetodoTransferencia, "05393006", "Pago Interbank", "Interbank"},
			{"2025-09-05", "300", pagoModel.MetodoYape, "18593202", "Pago Yape", ""},
			{"2025-10-10", "500", pagoModel.MetodoYape, "10957101", "Pago Yape", ""},
			{"2026-02-05", "500", pagoModel.MetodoEfectivo, "-", "Pago #11 efectivo", ""},
		}
		for _, p := range pagosMiguel {
			if err := insertarPagoSeed(tx, miguel.ID, loanMiguel.ID, p); err != nil {
				return err
			}
		}

		// ── PAGOS ANNIE ──────────────────────────────────────────
		pagosAnnie := []pagoSeed{
			{"2026-01-13", "1052.26", pagoModel.MetodoTransferencia, "0133370", "Transferencia Interbank", "Interbank"},
			{"2026-02-11", "1000.00", pagoModel.MetodoTransferencia, "1030664", "Transferencia Interbank", "Interbank"},
		}
		for _, p := range pagosAnnie {
			if err := insertarPagoSeed(tx, annie.ID, loanAnnie.ID, p); err != nil {
				return err
			}
		}

		log.Println("✅ Datos iniciales cargados correctamente")
		return nil
	})
}

func insertarPagoSeed(tx *gorm.DB, deudorID, prestamoID int, p pagoSeed) error {
	pago := pagoModel.PagoModel{
		DeudorID:        deudorID,
		PrestamoID:      &prestamoID,
		FechaPago:       fecha(p.fecha),
		Monto:           dec(p.monto),
		MetodoPago:      p.metodo,
		NumeroOperacion: str(p.op),
		Concepto:        str(p.concepto),
	}
	if p.banco != "" {
		pago.BancoOrigen = str(p.banco)
	}
	return tx.Create(&pago).Error
}
