package models

import "time"

// Expense is a posted expense. Cash expenses feed the projection's cash table.
type Expense struct {
	Base
	Date          time.Time     `gorm:"column:fecha;not null;index" json:"fecha"`
	Amount        int64         `gorm:"column:monto;not null" json:"monto"`
	CategoryID    *uint         `gorm:"column:categoria_id;index" json:"categoria_id,omitempty"`
	PaymentMethod PaymentMethod `gorm:"column:metodo_pago;not null;index" json:"metodo_pago"`
	Description   string        `gorm:"column:descripcion" json:"descripcion"`
	Paid          bool          `gorm:"column:pagado" json:"pagado"`

	// Installment purchases are stored as one row per month sharing a group ID.
	IsInstallment      bool    `gorm:"column:es_cuota" json:"es_cuota"`
	InstallmentNumber  int     `gorm:"column:cuota_numero" json:"cuota_numero,omitempty"`
	InstallmentsTotal  int     `gorm:"column:cuotas_totales" json:"cuotas_totales,omitempty"`
	InstallmentGroupID *string `gorm:"column:gasto_cuota_id;index" json:"gasto_cuota_id,omitempty"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"categoria,omitempty"`
}

// TableName overrides the default table name.
func (Expense) TableName() string { return "gastos" }
