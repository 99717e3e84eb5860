// Package pagination holds the page window used by list endpoints.
package pagination

import "gorm.io/gorm"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is the page window parsed from the pagina and por_pagina
// query parameters.
type PageRequest struct {
	Page     int `form:"pagina" binding:"omitempty,min=1"`
	PageSize int `form:"por_pagina" binding:"omitempty,min=1,max=100"`
}

// Defaults fills unset fields: first page, DefaultPageSize rows.
func (p *PageRequest) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps one page of rows with the totals of the full result.
type PageResponse[T any] struct {
	Data       []T   `json:"datos"`
	Page       int   `json:"pagina"`
	PageSize   int   `json:"por_pagina"`
	TotalItems int64 `json:"total"`
	TotalPages int   `json:"total_paginas"`
}

// NewPageResponse builds a PageResponse. A nil data slice is sent as [].
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Paginate returns a GORM scope limiting the query to req's window.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
