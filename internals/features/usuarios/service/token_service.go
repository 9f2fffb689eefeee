// file: internals/features/usuarios/service/token_service.go
package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/dalp10/CobrosBackend/internals/configs"
	model "github.com/dalp10/CobrosBackend/internals/features/usuarios/model"
)

const accessTTLDefault = 7 * 24 * time.Hour

// GenerarToken emite el access token HS256 con los claims del usuario.
func GenerarToken(u *model.UsuarioModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     u.ID,
		"email":  u.Email,
		"nombre": u.Nombre,
		"rol":    u.Rol,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// tokenTTL interpreta JWT_EXPIRES_IN: "7d", "24h", "30m"...
func tokenTTL() time.Duration {
	raw := strings.TrimSpace(configs.JWTExpiresIn)
	if raw == "" {
		return accessTTLDefault
	}
	if strings.HasSuffix(raw, "d") {
		if dias, err := strconv.Atoi(strings.TrimSuffix(raw, "d")); err == nil && dias > 0 {
			return time.Duration(dias) * 24 * time.Hour
		}
		return accessTTLDefault
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return accessTTLDefault
}
