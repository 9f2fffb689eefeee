// file: internals/helpers/pagination_test.go
package helper

import "testing"

// misma firma que fiber.Ctx.Query
func queryDe(valores map[string]string) func(string, ...string) string {
	return func(k string, def ...string) string {
		if v, ok := valores[k]; ok {
			return v
		}
		if len(def) > 0 {
			return def[0]
		}
		return ""
	}
}

func TestParsePaginationDefaults(t *testing.T) {
	p := ParsePagination(queryDe(nil))
	if p.Page != DefaultPage || p.PerPage != DefaultPerPage {
		t.Errorf("defaults = %+v, se esperaba page=%d per_page=%d", p, DefaultPage, DefaultPerPage)
	}
	if p.Offset() != 0 {
		t.Errorf("offset = %d, se esperaba 0", p.Offset())
	}
}

func TestParsePagination(t *testing.T) {
	casos := []struct {
		nombre  string
		valores map[string]string
		page    int
		per     int
	}{
		{"page y limit válidos", map[string]string{"page": "3", "limit": "20"}, 3, 20},
		{"per_page como alias", map[string]string{"per_page": "10"}, 1, 10},
		{"limit gana sobre per_page", map[string]string{"limit": "20", "per_page": "10"}, 1, 20},
		{"limit por encima del tope", map[string]string{"limit": "9999"}, 1, MaxPerPage},
		{"page negativo vuelve al default", map[string]string{"page": "-2"}, DefaultPage, DefaultPerPage},
		{"valores no numéricos", map[string]string{"page": "abc", "limit": "xyz"}, DefaultPage, DefaultPerPage},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := ParsePagination(queryDe(c.valores))
			if p.Page != c.page || p.PerPage != c.per {
				t.Errorf("got %+v, se esperaba page=%d per_page=%d", p, c.page, c.per)
			}
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 20}
	if p.Offset() != 40 || p.Limit() != 20 {
		t.Errorf("offset=%d limit=%d, se esperaba 40/20", p.Offset(), p.Limit())
	}
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, PaginationParams{Page: 2, PerPage: 50})
	if meta.TotalPages != 3 {
		t.Errorf("total_pages = %d, se esperaban 3", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("meta = %+v, página 2 de 3 tiene anterior y siguiente", meta)
	}

	vacia := BuildMeta(0, PaginationParams{Page: 1, PerPage: 50})
	if vacia.TotalPages != 0 || vacia.HasNext || vacia.HasPrev {
		t.Errorf("meta vacía = %+v", vacia)
	}
}
