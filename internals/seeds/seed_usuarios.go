// file: internals/seeds/seed_usuarios.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	usuarioModel "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
	usuarioService "github.com/dalp10/CobrosBackend/internals/features/usuarios/service"
)

// SeedUsuarioAdmin crea el usuario administrador por defecto si no existe.
func SeedUsuarioAdmin(db *gorm.DB) error {
	var existente usuarioModel.UsuarioModel
	err := db.Where("email = ?", "admin@cobros.com").First(&existente).Error
	if err == nil {
		log.Println("ℹ️ Usuario admin ya existe, se omite.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := usuarioService.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := usuarioModel.UsuarioModel{
		Nombre:   "Administrador",
		Email:    "admin@cobros.com",
		Password: hash,
		Rol:      "admin",
		Activo:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Usuario admin creado (admin@cobros.com)")
	return nil
}
