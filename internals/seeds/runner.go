// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds carga los datos iniciales extraídos de los documentos.
// Es idempotente: si ya existe el deudor ancla (Maritza) no vuelve a insertar.
func RunAllSeeds(db *gorm.DB) {
	if err := SeedUsuarioAdmin(db); err != nil {
		log.Printf("❌ Seed usuarios: %v", err)
	}
	if err := SeedDatosIniciales(db); err != nil {
		log.Printf("❌ Seed datos iniciales: %v", err)
	}
}
