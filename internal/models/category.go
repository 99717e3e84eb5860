package models

// Category groups expenses and fixed expenses.
type Category struct {
	Base
	Name  string `gorm:"column:nombre;not null;uniqueIndex" json:"nombre"`
	Icon  string `gorm:"column:icono" json:"icono"`
	Color string `gorm:"column:color" json:"color,omitempty"`
}

// TableName overrides the default table name.
func (Category) TableName() string { return "categorias" }
