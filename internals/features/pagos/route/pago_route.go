// file: internals/features/pagos/route/pago_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/dalp10/CobrosBackend/internals/features/pagos/controller"
)

func PagoRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPagoController(db)
	g := protected.Group("/pagos")

	// /resumen antes del CRUD para que no lo capture /:id
	g.Get("/resumen", ctrl.Resumen)
	g.Get("/", ctrl.GetAll)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
