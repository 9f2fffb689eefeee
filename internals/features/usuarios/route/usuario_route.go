// file: internals/features/usuarios/route/usuario_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dalp10/CobrosBackend/internals/constants"
	controller "github.com/dalp10/CobrosBackend/internals/features/usuarios/controller"
	middlewares "github.com/dalp10/CobrosBackend/internals/middlewares"
	authMiddleware "github.com/dalp10/CobrosBackend/internals/middlewares/auth"
)

// AuthRoutes: login público (con su propio rate limit) y /me autenticado.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	api.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Get("/auth/me", ctrl.Me)
}

// UsuarioRoutes: gestión de usuarios, solo admin salvo cambio de contraseña
// (el controller permite cambiarse la propia).
func UsuarioRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUsuarioController(db)
	g := api.Group("/usuarios")

	adminGate := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("gestión de usuarios"),
		constants.AdminOnly...,
	)

	g.Get("/", adminGate, ctrl.GetAll)
	g.Post("/", adminGate, ctrl.Create)
	g.Put("/:id", adminGate, ctrl.Update)
	g.Put("/:id/password", ctrl.ChangePassword)
}
