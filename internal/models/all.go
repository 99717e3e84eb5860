package models

// All lists every model, in dependency order, for auto-migration in tests.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&FixedExpense{},
		&Expense{},
		&Fund{},
		&Period{},
		&Override{},
		&Setting{},
		&AuditLog{},
	}
}
