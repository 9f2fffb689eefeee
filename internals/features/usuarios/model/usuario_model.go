// file: internals/features/usuarios/model/usuario_model.go
package model

import (
	"time"
)

// UsuarioModel representa la tabla usuarios (acceso al sistema)
type UsuarioModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre   string `gorm:"size:100;not null" json:"nombre"`
	Email    string `gorm:"size:150;unique;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Rol      string `gorm:"size:20;default:'admin'" json:"rol"`
	Activo   bool   `gorm:"not null;default:true" json:"activo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
