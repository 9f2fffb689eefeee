// file: internals/features/deudores/route/deudor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "github.com/dalp10/CobrosBackend/internals/features/deudores/controller"
)

func DeudorRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDeudorController(db)
	g := protected.Group("/deudores")

	g.Get("/", ctrl.GetAll)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
