// file: internals/helpers/pagination.go
package helper

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 50
	MaxPerPage     = 200
)

type PaginationParams struct {
	Page    int
	PerPage int
}

// ParsePagination interpreta page / limit (o per_page) de la query string.
// La firma de get calza con fiber.Ctx.Query.
func ParsePagination(get func(key string, defaultValue ...string) string) PaginationParams {
	page := atoiDefault(get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	perRaw := strings.TrimSpace(firstNonEmpty(get("limit"), get("per_page")))
	per := DefaultPerPage
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > MaxPerPage {
		per = MaxPerPage
	}

	return PaginationParams{Page: page, PerPage: per}
}

func (p PaginationParams) Limit() int  { return p.PerPage }
func (p PaginationParams) Offset() int { return (p.Page - 1) * p.PerPage }

// Meta para la respuesta
type PaginationMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func BuildMeta(total int64, p PaginationParams) PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.PerPage)))
	}
	return PaginationMeta{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    p.Page > 1,
		HasNext:    totalPages > 0 && p.Page < totalPages,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
