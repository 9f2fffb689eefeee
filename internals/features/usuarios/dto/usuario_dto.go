// file: internals/features/usuarios/dto/usuario_dto.go
package dto

import (
	"time"

	model "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
)

/* =======================================================================
   AUTH
======================================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  UsuarioResponse  `json:"user"`
}

/* =======================================================================
   USUARIOS
======================================================================= */

type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin user"`
}

type UpdateUsuarioRequest struct {
	Nombre string `json:"nombre" validate:"required,min=3,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Rol    string `json:"rol" validate:"required,oneof=admin user"`
	Activo *bool  `json:"activo,omitempty"`
}

type ChangePasswordRequest struct {
	PasswordActual string `json:"password_actual"`
	PasswordNuevo  string `json:"password_nuevo" validate:"required,min=6"`
}

type UsuarioResponse struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

/* =======================================================================
   MAPPERS
======================================================================= */

func ToUsuarioResponse(m *model.UsuarioModel) UsuarioResponse {
	return UsuarioResponse{
		ID:        m.ID,
		Nombre:    m.Nombre,
		Email:     m.Email,
		Rol:       m.Rol,
		Activo:    m.Activo,
		CreatedAt: m.CreatedAt,
	}
}

func (r CreateUsuarioRequest) ToModel() *model.UsuarioModel {
	rol := r.Rol
	if rol == "" {
		rol = "admin"
	}
	return &model.UsuarioModel{
		Nombre: r.Nombre,
		Email:  r.Email,
		Rol:    rol,
		Activo: true,
	}
}
