package models

// OverrideKind identifies which projection cell an override shadows.
type OverrideKind string

const (
	OverrideKindIncome OverrideKind = "ingreso_sueldo"
	OverrideKindFixed  OverrideKind = "gasto_fijo"
	OverrideKindCash   OverrideKind = "gasto_efectivo"
)

// IncomeOverrideRefID is the placeholder reference for income overrides,
// which are not tied to any entity.
const IncomeOverrideRefID uint = 0

// Valid reports whether k is a known override kind.
func (k OverrideKind) Valid() bool {
	switch k {
	case OverrideKindIncome, OverrideKindFixed, OverrideKindCash:
		return true
	}
	return false
}

// Override is a manual correction of one projection cell for one month.
// (Kind, ReferenceID, Year, Month) is unique. Income overrides use
// IncomeOverrideRefID as their reference.
type Override struct {
	Base
	Kind        OverrideKind `gorm:"column:tipo;not null;uniqueIndex:idx_proyeccion_overrides_key,priority:1" json:"tipo"`
	ReferenceID uint         `gorm:"column:referencia_id;not null;uniqueIndex:idx_proyeccion_overrides_key,priority:2" json:"referencia_id"`
	Year        int          `gorm:"column:anio;not null;uniqueIndex:idx_proyeccion_overrides_key,priority:3" json:"anio"`
	Month       int          `gorm:"column:mes;not null;uniqueIndex:idx_proyeccion_overrides_key,priority:4" json:"mes"`
	Amount      int64        `gorm:"column:monto_override;not null" json:"monto_override"`
	Note        string       `gorm:"column:descripcion" json:"descripcion"`
}

// TableName overrides the default table name.
func (Override) TableName() string { return "proyeccion_overrides" }
