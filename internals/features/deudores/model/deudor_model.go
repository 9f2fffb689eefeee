// file: internals/features/deudores/model/deudor_model.go
package model

import (
	"time"
)

// DeudorModel representa la tabla deudores
type DeudorModel struct {
	ID        int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string  `gorm:"size:150;not null" json:"nombre"`
	Apellidos string  `gorm:"size:150;not null" json:"apellidos"`
	DNI       *string `gorm:"column:dni;size:20" json:"dni,omitempty"`
	Telefono  *string `gorm:"size:20" json:"telefono,omitempty"`
	Email     *string `gorm:"size:150" json:"email,omitempty"`
	Direccion *string `gorm:"type:text" json:"direccion,omitempty"`
	Notas     *string `gorm:"type:text" json:"notas,omitempty"`

	// Soft delete vía flag (nunca se borra físicamente mientras esté referenciado)
	Activo bool `gorm:"not null;default:true" json:"activo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DeudorModel) TableName() string {
	return "deudores"
}
