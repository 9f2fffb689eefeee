// file: internals/features/deudores/controller/deudor_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/dalp10/CobrosBackend/internals/features/deudores/dto"
	model "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	pagoModel "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	helpers "github.com/dalp10/CobrosBackend/internals/helpers"
)

type DeudorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDeudorController(db *gorm.DB) *DeudorController {
	return &DeudorController{DB: db, Validator: validator.New()}
}

// GET /api/deudores — lista con resumen financiero.
// Los totales van por subconsulta: un JOIN simultáneo a prestamos y pagos
// multiplicaría filas y el SUM saldría inflado.
func (h *DeudorController) GetAll(c *fiber.Ctx) error {
	var rows []dto.DeudorConResumen
	err := h.DB.WithContext(c.Context()).
		Model(&model.DeudorModel{}).
		Select(`deudores.*,
			COALESCE((SELECT SUM(p.monto) FROM pagos p WHERE p.deudor_id = deudores.id), 0)           AS total_pagado,
			COALESCE((SELECT SUM(pr.monto_original) FROM prestamos pr WHERE pr.deudor_id = deudores.id), 0) AS total_prestado,
			COALESCE((SELECT SUM(pr.monto_original) FROM prestamos pr WHERE pr.deudor_id = deudores.id), 0)
				- COALESCE((SELECT SUM(p.monto) FROM pagos p WHERE p.deudor_id = deudores.id), 0)     AS saldo_pendiente,
			(SELECT COUNT(*) FROM prestamos pr WHERE pr.deudor_id = deudores.id)                      AS total_prestamos,
			(SELECT MAX(p.fecha_pago) FROM pagos p WHERE p.deudor_id = deudores.id)                   AS ultimo_pago`).
		Where("deudores.activo = ?", true).
		Order("deudores.apellidos, deudores.nombre").
		Scan(&rows).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener deudores")
	}
	return helpers.JsonOK(c, "OK", rows)
}

// GET /api/deudores/:id — detalle completo
func (h *DeudorController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var deudor model.DeudorModel
	if err := h.DB.WithContext(c.Context()).
		First(&deudor, "id = ? AND activo = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Deudor no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener deudor")
	}

	detalle := dto.DeudorDetalle{DeudorModel: deudor}

	if err := h.DB.WithContext(c.Context()).
		Where("deudor_id = ?", id).
		Order("fecha_inicio DESC").
		Find(&detalle.Prestamos).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener deudor")
	}

	if err := h.DB.WithContext(c.Context()).
		Where("deudor_id = ?", id).
		Order("fecha_pago DESC").
		Find(&detalle.Pagos).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener deudor")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&pagoModel.PagoModel{}).
		Select("COALESCE(SUM(monto), 0) AS total_pagado, COUNT(*) AS total_pagos").
		Where("deudor_id = ?", id).
		Scan(&detalle.Resumen).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener deudor")
	}

	return helpers.JsonOK(c, "OK", detalle)
}

// POST /api/deudores
func (h *DeudorController) Create(c *fiber.Ctx) error {
	var req dto.CreateDeudorRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al crear deudor")
	}
	return helpers.JsonCreated(c, "Deudor creado", m)
}

// PUT /api/deudores/:id
func (h *DeudorController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateDeudorRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var m model.DeudorModel
	if err := h.DB.WithContext(c.Context()).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "No encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar")
	}

	req.Apply(&m)
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar")
	}
	return helpers.JsonUpdated(c, "Deudor actualizado", m)
}

// DELETE /api/deudores/:id — soft delete: solo apaga el flag activo,
// nunca se borra físicamente mientras tenga préstamos/pagos.
func (h *DeudorController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := h.DB.WithContext(c.Context()).
		Model(&model.DeudorModel{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Deudor no encontrado")
	}
	return helpers.JsonDeleted(c, "Deudor desactivado", nil)
}
