package services

import (
	"context"
	"testing"
	"time"

	"finanzas/internal/models"
	"finanzas/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory(context.Background(), "Supermercado", "🛒", "#FF0000")
		testutil.AssertNoError(t, err)

		if cat.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if cat.Name != "Supermercado" || cat.Icon != "🛒" || cat.Color != "#FF0000" {
			t.Errorf("unexpected category: %+v", cat)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		ctx := context.Background()

		_, err := svc.CreateCategory(ctx, "Comida", "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(ctx, " Comida ", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewCategoryService(db).CreateCategory(context.Background(), "  ", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewCategoryService(db)

	testutil.CreateTestCategoryWithName(t, db, "Salud")
	testutil.CreateTestCategoryWithName(t, db, "Auto")

	categories, err := svc.ListCategories(context.Background())
	testutil.AssertNoError(t, err)
	if len(categories) != 2 || categories[0].Name != "Auto" {
		t.Errorf("expected categories ordered by name, got %+v", categories)
	}
}

func TestUpdateCategory(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Ocio")

		updated, err := svc.UpdateCategory(context.Background(), cat.ID, nil, strPtr("🎬"), nil)
		testutil.AssertNoError(t, err)

		if updated.Name != "Ocio" || updated.Icon != "🎬" {
			t.Errorf("unexpected category: %+v", updated)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		testutil.CreateTestCategoryWithName(t, db, "Ocio")
		cat := testutil.CreateTestCategoryWithName(t, db, "Viajes")

		_, err := svc.UpdateCategory(context.Background(), cat.ID, strPtr("Ocio"), nil, nil)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_is_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		cat := testutil.CreateTestCategoryWithName(t, db, "Ocio")

		_, err := NewCategoryService(db).UpdateCategory(context.Background(), cat.ID, strPtr("Ocio"), nil, nil)
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewCategoryService(db).UpdateCategory(context.Background(), 9999, strPtr("X"), nil, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("unused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		cat := testutil.CreateTestCategory(t, db)

		testutil.AssertNoError(t, svc.DeleteCategory(context.Background(), cat.ID))

		_, err := svc.GetCategoryByID(context.Background(), cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("used_by_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestExpense(t, db, &cat.ID, models.PaymentMethodCash, 100, testutil.Date(2026, time.March, 1))

		err := NewCategoryService(db).DeleteCategory(context.Background(), cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("used_by_fixed_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		cat := testutil.CreateTestCategory(t, db)
		testutil.CreateTestFixedExpense(t, db, &cat.ID, 100)

		err := NewCategoryService(db).DeleteCategory(context.Background(), cat.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})
}
