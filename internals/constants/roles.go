package constants

import "fmt"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Plantilla de mensajes de error por rol
const (
	ErrSoloAdmins = "❌ Solo administradores pueden acceder a %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSoloAdmins, feature)
}

// ==========================
// ✅ Grupos de roles
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleUser,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
