// file: internals/features/usuarios/controller/usuario_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dalp10/CobrosBackend/internals/constants"
	dto "github.com/dalp10/CobrosBackend/internals/features/usuarios/dto"
	model "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
	svc "github.com/dalp10/CobrosBackend/internals/features/usuarios/service"
	helpers "github.com/dalp10/CobrosBackend/internals/helpers"
)

type UsuarioController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: db, Validator: validator.New()}
}

// GET /api/usuarios — solo admin (gate en la ruta)
func (h *UsuarioController) GetAll(c *fiber.Ctx) error {
	var usuarios []model.UsuarioModel
	if err := h.DB.WithContext(c.Context()).
		Order("created_at DESC").
		Find(&usuarios).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener usuarios")
	}

	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, dto.ToUsuarioResponse(&usuarios[i]))
	}
	return helpers.JsonOK(c, "OK", out)
}

// POST /api/usuarios — solo admin
func (h *UsuarioController) Create(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var existe int64
	if err := h.DB.WithContext(c.Context()).
		Model(&model.UsuarioModel{}).
		Where("email = ?", req.Email).
		Count(&existe).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al crear usuario")
	}
	if existe > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "El email ya está registrado")
	}

	hash, err := svc.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al crear usuario")
	}

	u := req.ToModel()
	u.Password = hash
	if err := h.DB.WithContext(c.Context()).Create(u).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al crear usuario")
	}

	return helpers.JsonCreated(c, "Usuario creado", dto.ToUsuarioResponse(u))
}

// PUT /api/usuarios/:id — solo admin
func (h *UsuarioController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var u model.UsuarioModel
	if err := h.DB.WithContext(c.Context()).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar")
	}

	u.Nombre = req.Nombre
	u.Email = req.Email
	u.Rol = req.Rol
	if req.Activo != nil {
		u.Activo = *req.Activo
	}

	if err := h.DB.WithContext(c.Context()).Save(&u).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar")
	}
	return helpers.JsonUpdated(c, "Usuario actualizado", dto.ToUsuarioResponse(&u))
}

// PUT /api/usuarios/:id/password — el propio usuario o un admin
func (h *UsuarioController) ChangePassword(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	userID, err := helpers.GetUserID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	esAdmin := helpers.GetUserRol(c) == constants.RoleAdmin
	if userID != id && !esAdmin {
		return helpers.JsonError(c, fiber.StatusForbidden, "Sin permisos")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var u model.UsuarioModel
	if err := h.DB.WithContext(c.Context()).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al cambiar contraseña")
	}

	// si no es admin debe acreditar la contraseña actual
	if !esAdmin && !svc.VerificarPassword(u.Password, req.PasswordActual) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Contraseña actual incorrecta")
	}

	hash, err := svc.HashPassword(req.PasswordNuevo)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al cambiar contraseña")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&u).
		Update("password", hash).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al cambiar contraseña")
	}
	return helpers.JsonUpdated(c, "Contraseña actualizada", nil)
}
