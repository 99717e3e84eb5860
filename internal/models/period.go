package models

import "time"

// Period is a stored accounting period.
type Period struct {
	Base
	Month       int        `gorm:"column:mes;not null;uniqueIndex:idx_periodos_mes_anio" json:"mes"`
	Year        int        `gorm:"column:anio;not null;uniqueIndex:idx_periodos_mes_anio" json:"anio"`
	StartDate   time.Time  `gorm:"column:fecha_inicio;not null;index" json:"fecha_inicio"`
	EndDate     time.Time  `gorm:"column:fecha_fin;not null" json:"fecha_fin"`
	Provisional bool       `gorm:"column:es_provisional" json:"es_provisional"`
	InvoiceDate *time.Time `gorm:"column:fecha_factura" json:"fecha_factura,omitempty"`
	Notes       string     `gorm:"column:notas" json:"notas,omitempty"`
}

// TableName overrides the default table name.
func (Period) TableName() string { return "periodos" }
