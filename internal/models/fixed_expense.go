package models

// FixedExpense is a recurring monthly obligation with a provisioned amount.
type FixedExpense struct {
	Base
	Name            string        `gorm:"column:nombre;not null" json:"nombre"`
	CategoryID      *uint         `gorm:"column:categoria_id;index" json:"categoria_id,omitempty"`
	DueDay          int           `gorm:"column:dia_vencimiento;not null" json:"dia_vencimiento"`
	ProvisionAmount int64         `gorm:"column:monto_provision;not null" json:"monto_provision"`
	PaymentMethod   PaymentMethod `gorm:"column:metodo_pago;not null" json:"metodo_pago"`
	Active          bool          `gorm:"column:activo;default:true" json:"activo"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"categoria,omitempty"`
}

// TableName overrides the default table name.
func (FixedExpense) TableName() string { return "gastos_fijos" }

// CategoryName returns the category's name or a placeholder when unassigned.
func (f *FixedExpense) CategoryName() string {
	if f.Category == nil || f.Category.Name == "" {
		return "Sin categoría"
	}
	return f.Category.Name
}
