package projection

import (
	"finanzas/internal/models"
	"finanzas/internal/period"
)

// Key addresses a single overridable cell.
type Key struct {
	Kind  models.OverrideKind
	RefID uint
	Month period.MonthKey
}

// OverrideSet maps cells to their manual amounts.
type OverrideSet map[Key]int64

// NewOverrideSet indexes stored overrides by cell.
func NewOverrideSet(overrides []models.Override) OverrideSet {
	set := make(OverrideSet, len(overrides))
	for _, o := range overrides {
		set.Put(o.Kind, o.ReferenceID, period.MonthKey{Year: o.Year, Month: o.Month}, o.Amount)
	}
	return set
}

// Put records an override amount.
func (s OverrideSet) Put(kind models.OverrideKind, refID uint, month period.MonthKey, amount int64) {
	s[Key{Kind: kind, RefID: refID, Month: month}] = amount
}

// Resolve returns the override for the cell if there is one, else base.
// A nil set never overrides.
func (s OverrideSet) Resolve(kind models.OverrideKind, refID uint, month period.MonthKey, base int64) (int64, bool) {
	if amount, ok := s[Key{Kind: kind, RefID: refID, Month: month}]; ok {
		return amount, true
	}
	return base, false
}
