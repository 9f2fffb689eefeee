// file: internals/features/prestamos/model/cuota_model_test.go
package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSiguienteEstado(t *testing.T) {
	esperado := decimal.RequireFromString("500.00")

	casos := []struct {
		nombre string
		actual CuotaEstado
		pagado string
		want   CuotaEstado
	}{
		{"pago parcial", CuotaEstadoPendiente, "200", CuotaEstadoParcial},
		{"pago exacto", CuotaEstadoPendiente, "500", CuotaEstadoPagado},
		{"sobrepago directo", CuotaEstadoPendiente, "600", CuotaEstadoPagado},
		{"acumula sobre parcial sin llegar", CuotaEstadoParcial, "450", CuotaEstadoParcial},
		{"acumula sobre parcial y completa", CuotaEstadoParcial, "500", CuotaEstadoPagado},
		{"pagado no se revierte", CuotaEstadoPagado, "100", CuotaEstadoPagado},
		{"vencido con pago completo", CuotaEstadoVencido, "500", CuotaEstadoPagado},
		{"vencido con pago parcial", CuotaEstadoVencido, "100", CuotaEstadoParcial},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := SiguienteEstado(c.actual, decimal.RequireFromString(c.pagado), esperado)
			if got != c.want {
				t.Errorf("SiguienteEstado(%s, %s, 500) = %s, se esperaba %s", c.actual, c.pagado, got, c.want)
			}
		})
	}
}
