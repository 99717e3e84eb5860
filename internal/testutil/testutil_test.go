package testutil_test

import (
	"testing"
	"time"

	"finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"categorias", "gastos_fijos", "gastos", "fondos", "periodos", "proyeccion_overrides", "app_config", "auditoria"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestCategory(t, first)

	var count int64
	if err := second.Model(&models.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected isolated database, found %d categories", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	cat := testutil.CreateTestCategory(t, db)
	if cat.ID == 0 {
		t.Fatal("category should have a non-zero ID")
	}

	fe := testutil.CreateTestFixedExpense(t, db, &cat.ID, 500000)
	if !fe.Active || fe.ProvisionAmount != 500000 {
		t.Errorf("unexpected fixed expense: %+v", fe)
	}

	exp := testutil.CreateTestExpense(t, db, &cat.ID, models.PaymentMethodCash, 1200, testutil.Date(2026, time.March, 3))
	if exp.Amount != 1200 {
		t.Errorf("expected amount 1200, got %d", exp.Amount)
	}

	o := testutil.CreateTestOverride(t, db, models.OverrideKindFixed, fe.ID, 2026, 3, 1)
	if o.ID == 0 {
		t.Error("override should have a non-zero ID")
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrOverrideNotFound, "custom message")
	testutil.AssertAppError(t, err, "OVERRIDE_NOT_FOUND")
}

func TestAssertErrorIs(t *testing.T) {
	err := errors.Wrap(errors.ErrNoExpenses, nil)
	testutil.AssertErrorIs(t, err, errors.ErrNoExpenses)
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
