// file: internals/features/prestamos/controller/prestamo_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deudorModel "github.com/dalp10/CobrosBackend/internals/features/deudores/model"
	dto "github.com/dalp10/CobrosBackend/internals/features/prestamos/dto"
	model "github.com/dalp10/CobrosBackend/internals/features/prestamos/model"
	svc "github.com/dalp10/CobrosBackend/internals/features/prestamos/service"
	helpers "github.com/dalp10/CobrosBackend/internals/helpers"
)

type PrestamoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPrestamoController(db *gorm.DB) *PrestamoController {
	return &PrestamoController{DB: db, Validator: validator.New()}
}

// GET /api/prestamos?deudor_id= — lista con saldo y conteo de cuotas
func (h *PrestamoController) GetAll(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.Context()).
		Model(&model.PrestamoModel{}).
		Select(`prestamos.*,
			d.nombre || ' ' || d.apellidos AS deudor_nombre,
			COALESCE((SELECT SUM(p.monto) FROM pagos p WHERE p.prestamo_id = prestamos.id), 0)  AS total_pagado,
			prestamos.monto_original
				- COALESCE((SELECT SUM(p.monto) FROM pagos p WHERE p.prestamo_id = prestamos.id), 0) AS saldo_pendiente,
			(SELECT COUNT(*) FROM cuotas cu WHERE cu.prestamo_id = prestamos.id AND cu.estado = 'pagado')  AS cuotas_pagadas,
			(SELECT COUNT(*) FROM cuotas cu WHERE cu.prestamo_id = prestamos.id AND cu.estado <> 'pagado') AS cuotas_pendientes`).
		Joins("JOIN deudores d ON d.id = prestamos.deudor_id").
		Order("prestamos.fecha_inicio DESC")

	if deudorID := c.Query("deudor_id"); deudorID != "" {
		q = q.Where("prestamos.deudor_id = ?", deudorID)
	}

	var rows []dto.PrestamoConSaldo
	if err := q.Scan(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener préstamos")
	}
	return helpers.JsonOK(c, "OK", rows)
}

// GET /api/prestamos/:id — con cronograma y pagos
func (h *PrestamoController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var detalle dto.PrestamoDetalle
	err = h.DB.WithContext(c.Context()).
		Model(&model.PrestamoModel{}).
		Select("prestamos.*, d.nombre || ' ' || d.apellidos AS deudor_nombre").
		Joins("JOIN deudores d ON d.id = prestamos.deudor_id").
		Where("prestamos.id = ?", id).
		First(&detalle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Préstamo no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener préstamo")
	}

	if err := h.DB.WithContext(c.Context()).
		Where("prestamo_id = ?", id).
		Order("numero_cuota").
		Find(&detalle.Cuotas).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener préstamo")
	}

	if err := h.DB.WithContext(c.Context()).
		Where("prestamo_id = ?", id).
		Order("fecha_pago DESC").
		Find(&detalle.Pagos).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener préstamo")
	}

	saldo, err := svc.CalcularSaldo(h.DB.WithContext(c.Context()), &detalle.PrestamoModel)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener préstamo")
	}
	detalle.Saldo = saldo

	prox, err := svc.ProximoVencimiento(h.DB.WithContext(c.Context()), id)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener préstamo")
	}
	detalle.ProximoVencimiento = prox

	return helpers.JsonOK(c, "OK", detalle)
}

// GET /api/prestamos/:id/cuotas
func (h *PrestamoController) GetCuotas(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var cuotas []model.CuotaModel
	if err := h.DB.WithContext(c.Context()).
		Where("prestamo_id = ?", id).
		Order("numero_cuota").
		Find(&cuotas).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener cuotas")
	}
	return helpers.JsonOK(c, "OK", cuotas)
}

// POST /api/prestamos — crea el préstamo y genera su cronograma en la
// misma transacción.
func (h *PrestamoController) Create(c *fiber.Ctx) error {
	var req dto.CreatePrestamoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}
	if !req.MontoOriginal.IsPositive() {
		return helpers.JsonError(c, fiber.StatusBadRequest, "monto_original debe ser mayor a 0")
	}

	var deudor deudorModel.DeudorModel
	if err := h.DB.WithContext(c.Context()).
		First(&deudor, "id = ? AND activo = ?", req.DeudorID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Deudor no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al crear préstamo")
	}

	m := req.ToModel()
	cuotaPremio := 0
	if req.CuotaPremio != nil {
		cuotaPremio = *req.CuotaPremio
	}

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		_, err := svc.GenerarCronograma(tx, m, cuotaPremio, req.MontoPremio)
		return err
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al crear préstamo")
	}

	return helpers.JsonCreated(c, "Préstamo creado", m)
}

// PATCH /api/prestamos/:id/estado
func (h *PrestamoController) UpdateEstado(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	estado := model.PrestamoEstado(req.Estado)
	if !estado.Valido() {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Estado inválido")
	}

	var m model.PrestamoModel
	if err := h.DB.WithContext(c.Context()).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Préstamo no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar estado")
	}

	m.Estado = estado
	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar estado")
	}
	return helpers.JsonUpdated(c, "Estado actualizado", m)
}
