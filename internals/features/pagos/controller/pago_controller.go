// file: internals/features/pagos/controller/pago_controller.go
package controller

import (
	"errors"

	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/dalp10/CobrosBackend/internals/features/pagos/dto"
	model "github.com/dalp10/CobrosBackend/internals/features/pagos/model"
	svc "github.com/dalp10/CobrosBackend/internals/features/pagos/service"
	helpers "github.com/dalp10/CobrosBackend/internals/helpers"
	storage "github.com/dalp10/CobrosBackend/internals/helpers/storage"
)

type PagoController struct {
	DB *gorm.DB
}

func NewPagoController(db *gorm.DB) *PagoController {
	return &PagoController{DB: db}
}

// GET /api/pagos?deudor_id=&prestamo_id=&metodo=&desde=&hasta=&page=&limit=
func (h *PagoController) GetAll(c *fiber.Ctx) error {
	pg := helpers.ParsePagination(c.Query)

	base := h.DB.WithContext(c.Context()).Model(&model.PagoModel{})
	if v := c.Query("deudor_id"); v != "" {
		base = base.Where("pagos.deudor_id = ?", v)
	}
	if v := c.Query("prestamo_id"); v != "" {
		base = base.Where("pagos.prestamo_id = ?", v)
	}
	if v := c.Query("metodo"); v != "" {
		base = base.Where("pagos.metodo_pago = ?", v)
	}
	if v := c.Query("desde"); v != "" {
		base = base.Where("pagos.fecha_pago >= ?", v)
	}
	if v := c.Query("hasta"); v != "" {
		base = base.Where("pagos.fecha_pago <= ?", v)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener pagos")
	}

	var rows []dto.PagoConNombres
	err := base.
		Select(`pagos.*,
			d.nombre || ' ' || d.apellidos AS deudor_nombre,
			pr.descripcion                 AS prestamo_desc`).
		Joins("JOIN deudores d ON d.id = pagos.deudor_id").
		Joins("LEFT JOIN prestamos pr ON pr.id = pagos.prestamo_id").
		Order("pagos.fecha_pago DESC, pagos.created_at DESC").
		Limit(pg.Limit()).
		Offset(pg.Offset()).
		Scan(&rows).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener pagos")
	}

	return helpers.JsonList(c, "OK", rows, helpers.BuildMeta(total, pg))
}

// POST /api/pagos — registra el pago (multipart, voucher opcional) y
// concilia la cuota en una sola transacción.
func (h *PagoController) Create(c *fiber.Ctx) error {
	var req dto.CreatePagoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formulario inválido")
	}

	pago, err := req.ToModel()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if userID, err := helpers.GetUserID(c); err == nil {
		pago.RegistradoPor = &userID
	}

	// voucher opcional
	if fh, err := c.FormFile("imagen"); err == nil && fh != nil {
		url, nombre, err := storage.GuardarVoucher(c, fh)
		if err != nil {
			if errors.Is(err, storage.ErrArchivoMuyGrande) {
				return helpers.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
			}
			return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		pago.ImagenURL = &url
		pago.ImagenNombre = &nombre
	}

	if err := svc.RegistrarPago(h.DB.WithContext(c.Context()), pago); err != nil {
		// el pago no quedó: no dejar el voucher huérfano en disco
		storage.EliminarVoucher(pago.ImagenURL)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al registrar pago")
	}

	return helpers.JsonCreated(c, "Pago registrado", pago)
}

// PUT /api/pagos/:id — edición de reemplazo total, con cambio/retiro de
// voucher. Sin historial: la versión anterior se pierde.
func (h *PagoController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var pago model.PagoModel
	if err := h.DB.WithContext(c.Context()).First(&pago, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar pago")
	}

	var req dto.UpdatePagoRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Formulario inválido")
	}
	if err := req.Apply(&pago); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// voucher: reemplazo o retiro explícito
	if fh, err := c.FormFile("imagen"); err == nil && fh != nil {
		url, nombre, err := storage.GuardarVoucher(c, fh)
		if err != nil {
			if errors.Is(err, storage.ErrArchivoMuyGrande) {
				return helpers.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
			}
			return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		storage.EliminarVoucher(pago.ImagenURL)
		pago.ImagenURL = &url
		pago.ImagenNombre = &nombre
	} else if req.RemoveImagen == "true" {
		storage.EliminarVoucher(pago.ImagenURL)
		pago.ImagenURL = nil
		pago.ImagenNombre = nil
	}

	if err := h.DB.WithContext(c.Context()).Save(&pago).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al actualizar pago")
	}
	return helpers.JsonUpdated(c, "Pago actualizado", pago)
}

// DELETE /api/pagos/:id — borra el pago y su voucher en disco.
// Nota: no recalcula la cuota conciliada (decisión de producto heredada).
func (h *PagoController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var pago model.PagoModel
	if err := h.DB.WithContext(c.Context()).First(&pago, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar pago")
	}

	storage.EliminarVoucher(pago.ImagenURL)

	if err := h.DB.WithContext(c.Context()).Delete(&pago).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al eliminar pago")
	}
	return helpers.JsonDeleted(c, "Pago eliminado", nil)
}

// GET /api/pagos/resumen — dashboard
func (h *PagoController) Resumen(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.Context())

	porDeudor, err := svc.ResumenPorDeudor(db)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener resumen")
	}
	porMetodo, err := svc.ResumenPorMetodo(db)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener resumen")
	}
	porMes, err := svc.ResumenPorMes(db, 12)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener resumen")
	}
	totales, err := svc.TotalesGlobales(db)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error al obtener resumen")
	}

	return helpers.JsonOK(c, "OK", fiber.Map{
		"porDeudor": porDeudor,
		"porMetodo": porMetodo,
		"porMes":    porMes,
		"totales":   totales,
	})
}
