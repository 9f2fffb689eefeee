// file: internals/features/prestamos/route/prestamo_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/dalp10/CobrosBackend/internals/features/prestamos/controller"
)

func PrestamoRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrestamoController(db)
	g := protected.Group("/prestamos")

	g.Get("/", ctrl.GetAll)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/cuotas", ctrl.GetCuotas)
	g.Post("/", ctrl.Create)
	g.Patch("/:id/estado", ctrl.UpdateEstado)
}
