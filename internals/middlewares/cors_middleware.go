// file: internals/middlewares/cors_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/dalp10/CobrosBackend/internals/configs"
)

// CorsMiddleware arma el middleware CORS. Los orígenes permitidos llegan
// por ALLOWED_ORIGINS (separados por coma), con fallback al front local.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("ALLOWED_ORIGINS", "http://localhost:4200")
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(strings.Split(origins, ","), ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
