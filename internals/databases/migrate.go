// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	pagoModel "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	prestamoModel "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
	usuarioModel "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
)

// Migrate crea/actualiza las tablas (usuarios, deudores, prestamos, cuotas, pagos).
// El orden importa por las FKs.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&usuarioModel.UsuarioModel{},
		&deudorModel.DeudorModel{},
		&prestamoModel.PrestamoModel{},
		&prestamoModel.CuotaModel{},
		&pagoModel.PagoModel{},
	); err != nil {
		return err
	}
	log.Println("✅ Tablas migradas correctamente")
	return nil
}
