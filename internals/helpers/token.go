// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Claims del principal autenticado, guardados en Locals por el middleware
// de auth: user_id (int), user_rol (string), user_nombre (string).

func GetUserID(c *fiber.Ctx) (int, error) {
	id, ok := c.Locals("user_id").(int)
	if !ok || id <= 0 {
		return 0, errors.New("user_id no presente en el contexto")
	}
	return id, nil
}

func GetUserRol(c *fiber.Ctx) string {
	rol, _ := c.Locals("user_rol").(string)
	return rol
}

func GetUserNombre(c *fiber.Ctx) string {
	nombre, _ := c.Locals("user_nombre").(string)
	return nombre
}
