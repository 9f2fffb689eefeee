// file: internals/middlewares/auth/auth_middleware_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestExtractUserID(t *testing.T) {
	if id, err := extractUserID(jwt.MapClaims{"id": float64(7)}); err != nil || id != 7 {
		t.Errorf("id = %d, err = %v", id, err)
	}
	if _, err := extractUserID(jwt.MapClaims{}); err == nil {
		t.Error("sin claim id debía fallar")
	}
	if _, err := extractUserID(jwt.MapClaims{"id": "7"}); err == nil {
		t.Error("id como string no es un claim numérico válido")
	}
	if _, err := extractUserID(jwt.MapClaims{"id": float64(0)}); err == nil {
		t.Error("id cero no es válido")
	}
}

func TestValidarExpiracion(t *testing.T) {
	vigente := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
	if err := ValidarExpiracion(vigente, 0); err != nil {
		t.Errorf("token vigente rechazado: %v", err)
	}

	vencido := jwt.MapClaims{"exp": float64(time.Now().Add(-time.Hour).Unix())}
	if err := ValidarExpiracion(vencido, 0); err == nil {
		t.Error("token vencido aceptado")
	}
	// dentro del margen de tolerancia sí pasa
	if err := ValidarExpiracion(vencido, 2*time.Hour); err != nil {
		t.Errorf("el margen de tolerancia debía aceptarlo: %v", err)
	}

	if err := ValidarExpiracion(jwt.MapClaims{}, 0); err == nil {
		t.Error("sin claim exp debía fallar")
	}
}
