package services

import (
	"context"
	"testing"

	"finanzas/internal/models"
	"finanzas/internal/testutil"
)

func TestCreateFixedExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFixedExpenseService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Hogar")

		fe, err := svc.CreateFixedExpense(context.Background(), FixedExpenseInput{
			Name:            "Arriendo",
			CategoryID:      &cat.ID,
			DueDay:          5,
			ProvisionAmount: 500000,
			PaymentMethod:   models.PaymentMethodCash,
		})
		testutil.AssertNoError(t, err)

		if fe.ID == 0 || !fe.Active {
			t.Fatalf("expected stored active fixed expense, got %+v", fe)
		}
		if fe.CategoryName() != "Hogar" {
			t.Errorf("expected category Hogar, got %s", fe.CategoryName())
		}
		if fe.PaymentMethod != models.PaymentMethodCash {
			t.Errorf("expected efectivo, got %s", fe.PaymentMethod)
		}
	})

	t.Run("defaults_to_card", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		fe, err := NewFixedExpenseService(db).CreateFixedExpense(context.Background(), FixedExpenseInput{
			Name: "Internet", DueDay: 10, ProvisionAmount: 25000,
		})
		testutil.AssertNoError(t, err)
		if fe.PaymentMethod != models.PaymentMethodCard {
			t.Errorf("expected tarjeta, got %s", fe.PaymentMethod)
		}
		if fe.CategoryName() != "Sin categoría" {
			t.Errorf("expected placeholder category, got %s", fe.CategoryName())
		}
	})

	t.Run("invalid_due_day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewFixedExpenseService(db).CreateFixedExpense(context.Background(), FixedExpenseInput{
			Name: "Luz", DueDay: 32, ProvisionAmount: 1,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		missing := uint(9999)

		_, err := NewFixedExpenseService(db).CreateFixedExpense(context.Background(), FixedExpenseInput{
			Name: "Luz", DueDay: 3, ProvisionAmount: 1, CategoryID: &missing,
		})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestListFixedExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewFixedExpenseService(db)
	ctx := context.Background()

	a := testutil.CreateTestFixedExpense(t, db, nil, 100)
	b := testutil.CreateTestFixedExpense(t, db, nil, 200)
	testutil.AssertNoError(t, svc.DeactivateFixedExpense(ctx, b.ID))

	all, err := svc.ListFixedExpenses(ctx, nil)
	testutil.AssertNoError(t, err)
	if len(all) != 2 {
		t.Errorf("expected 2 fixed expenses, got %d", len(all))
	}

	active := true
	onlyActive, err := svc.ListFixedExpenses(ctx, &active)
	testutil.AssertNoError(t, err)
	if len(onlyActive) != 1 || onlyActive[0].ID != a.ID {
		t.Errorf("expected only %d active, got %+v", a.ID, onlyActive)
	}

	inactive := false
	onlyInactive, err := svc.ListFixedExpenses(ctx, &inactive)
	testutil.AssertNoError(t, err)
	if len(onlyInactive) != 1 || onlyInactive[0].ID != b.ID {
		t.Errorf("expected only %d inactive, got %+v", b.ID, onlyInactive)
	}
}

func TestUpdateFixedExpense(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFixedExpenseService(db)
		fe := testutil.CreateTestFixedExpense(t, db, nil, 100)

		day := 20
		updated, err := svc.UpdateFixedExpense(context.Background(), fe.ID, FixedExpenseUpdate{
			ProvisionAmount: int64Ptr(150),
			DueDay:          &day,
		})
		testutil.AssertNoError(t, err)
		if updated.ProvisionAmount != 150 || updated.DueDay != 20 || updated.Name != fe.Name {
			t.Errorf("unexpected fixed expense: %+v", updated)
		}
	})

	t.Run("reactivate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewFixedExpenseService(db)
		ctx := context.Background()
		fe := testutil.CreateTestFixedExpense(t, db, nil, 100)
		testutil.AssertNoError(t, svc.DeactivateFixedExpense(ctx, fe.ID))

		active := true
		updated, err := svc.UpdateFixedExpense(ctx, fe.ID, FixedExpenseUpdate{Active: &active})
		testutil.AssertNoError(t, err)
		if !updated.Active {
			t.Error("expected fixed expense to be active again")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewFixedExpenseService(db).UpdateFixedExpense(context.Background(), 9999, FixedExpenseUpdate{})
		testutil.AssertAppError(t, err, "FIXED_EXPENSE_NOT_FOUND")
	})
}

func TestDeactivateFixedExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewFixedExpenseService(db)
	ctx := context.Background()
	fe := testutil.CreateTestFixedExpense(t, db, nil, 100)

	testutil.AssertNoError(t, svc.DeactivateFixedExpense(ctx, fe.ID))

	stored, err := svc.GetFixedExpenseByID(ctx, fe.ID)
	testutil.AssertNoError(t, err)
	if stored.Active {
		t.Error("expected fixed expense to be inactive")
	}

	err = svc.DeactivateFixedExpense(ctx, 9999)
	testutil.AssertAppError(t, err, "FIXED_EXPENSE_NOT_FOUND")
}
