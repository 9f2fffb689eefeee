// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dalp10/CobrosBackend/internals/configs"
	database "github.com/dalp10/CobrosBackend/internals/databases"
	deudorRoute "github.com/dalp10/CobrosBackend/internals/features/deudores/route"
	pagoRoute "github.com/dalp10/CobrosBackend/internals/features/pagos/route"
	prestamoRoute "github.com/dalp10/CobrosBackend/internals/features/prestamos/route"
	usuarioRoute "github.com/dalp10/CobrosBackend/internals/features/usuarios/route"
	authMiddleware "github.com/dalp10/CobrosBackend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// Archivos subidos (vouchers)
	app.Static("/uploads", configs.UploadsDir)

	// ❤️ Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		sqlDB, err := database.DB.DB()
		dbStatus := "connected"
		httpStatus := fiber.StatusOK
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
			httpStatus = fiber.StatusServiceUnavailable
		}
		return c.Status(httpStatus).JSON(fiber.Map{
			"status":    "ok",
			"database":  dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime_s":  int(time.Since(startTime).Seconds()),
		})
	})

	// ===================== GROUPS =====================
	// Un solo grupo /api con JWT; el middleware salta /auth/login y /health.
	log.Println("[INFO] Montando grupo /api (JWT)...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// ===================== MOUNT =====================
	usuarioRoute.AuthRoutes(api, db)
	usuarioRoute.UsuarioRoutes(api, db)
	deudorRoute.DeudorRoutes(api, db)
	prestamoRoute.PrestamoRoutes(api, db)
	pagoRoute.PagoRoutes(api, db)
}
