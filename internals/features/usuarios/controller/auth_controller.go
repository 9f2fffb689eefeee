// file: internals/features/usuarios/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/dalp10/CobrosBackend/internals/features/usuarios/dto"
	model "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
	svc "github.com/dalp10/CobrosBackend/internals/features/usuarios/service"
	helpers "github.com/dalp10/CobrosBackend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var u model.UsuarioModel
	if err := h.DB.WithContext(c.Context()).
		First(&u, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mismo mensaje que password incorrecto: no filtrar qué falló
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error del servidor")
	}

	if !svc.VerificarPassword(u.Password, req.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	if !u.Activo {
		return helpers.JsonError(c, fiber.StatusForbidden, "Tu cuenta ha sido desactivada")
	}

	token, err := svc.GenerarToken(&u)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return helpers.JsonOK(c, "Login exitoso", dto.LoginResponse{
		Token: token,
		User:  dto.ToUsuarioResponse(&u),
	})
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helpers.GetUserID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var u model.UsuarioModel
	if err := h.DB.WithContext(c.Context()).First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error del servidor")
	}

	return helpers.JsonOK(c, "OK", dto.ToUsuarioResponse(&u))
}
