// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/dalp10/CobrosBackend/internals/configs"
	usuarioModel "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
)

// Rutas públicas que se saltan el auth
var skipPaths = map[string]struct{}{
	"/api/auth/login": {},
	"/api/health":     {},
}

// AuthMiddleware valida el Bearer token y deja el principal en Locals:
// user_id (int), user_rol, user_nombre.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Falta el secreto JWT")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o expirado")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin user ID válido")
		}

		if err := ensureUsuarioActivo(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Usuario no encontrado")
			}
			return fiber.NewError(fiber.StatusForbidden, "Tu cuenta ha sido desactivada")
		}

		c.Locals("user_id", userID)
		if rol, ok := claims["rol"].(string); ok {
			c.Locals("user_rol", rol)
		}
		if nombre, ok := claims["nombre"].(string); ok {
			c.Locals("user_nombre", nombre)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("falta el header Authorization")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("formato de Authorization inválido")
	}
	return parts[1], nil
}

func extractUserID(claims jwt.MapClaims) (int, error) {
	// los claims numéricos llegan como float64
	if f, ok := claims["id"].(float64); ok && f > 0 {
		return int(f), nil
	}
	return 0, errors.New("claim id ausente")
}

func ensureUsuarioActivo(db *gorm.DB, userID int) error {
	var u usuarioModel.UsuarioModel
	if err := db.Select("id", "activo").First(&u, userID).Error; err != nil {
		return err
	}
	if !u.Activo {
		return errors.New("usuario inactivo")
	}
	return nil
}

// ValidarExpiracion revisa el claim exp con un margen de tolerancia.
func ValidarExpiracion(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("claim exp ausente")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expirado")
	}
	return nil
}
