package models

// Setting keys.
const (
	SettingOpeningBalance = "saldo_inicial"
	SettingProjectionBase = "fecha_base_proyeccion"
)

// Setting is a key/value application setting.
type Setting struct {
	Base
	Key          string  `gorm:"column:clave;not null;uniqueIndex" json:"clave"`
	NumericValue *int64  `gorm:"column:valor_numeric" json:"valor_numeric,omitempty"`
	TextValue    *string `gorm:"column:valor_text" json:"valor_text,omitempty"`
}

// TableName overrides the default table name.
func (Setting) TableName() string { return "app_config" }
