package services

import (
	"context"
	"testing"

	"finanzas/internal/models"
	"finanzas/internal/testutil"
)

func strPtr(v string) *string { return &v }

func TestGetProjectionBaseline(t *testing.T) {
	t.Run("defaults_when_unset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		b, err := NewSettingsService(db).GetProjectionBaseline(context.Background())
		testutil.AssertNoError(t, err)
		if b.OpeningBalance != 0 || b.BaseMonth != nil {
			t.Errorf("expected empty baseline, got %+v", b)
		}
	})
}

func TestUpdateProjectionBaseline(t *testing.T) {
	t.Run("sets_and_replaces_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		ctx := context.Background()

		_, err := svc.UpdateProjectionBaseline(ctx, int64Ptr(1000000), strPtr("2026-01"))
		testutil.AssertNoError(t, err)
		b, err := svc.UpdateProjectionBaseline(ctx, int64Ptr(1500000), nil)
		testutil.AssertNoError(t, err)

		if b.OpeningBalance != 1500000 {
			t.Errorf("expected opening balance 1500000, got %d", b.OpeningBalance)
		}
		if b.BaseMonth == nil || *b.BaseMonth != "2026-01" {
			t.Errorf("expected base month to be kept, got %v", b.BaseMonth)
		}

		var count int64
		db.Model(&models.Setting{}).Count(&count)
		if count != 2 {
			t.Errorf("expected 2 settings rows, got %d", count)
		}
	})

	t.Run("empty_base_month_clears_it", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		ctx := context.Background()

		_, err := svc.UpdateProjectionBaseline(ctx, nil, strPtr("2026-01"))
		testutil.AssertNoError(t, err)
		b, err := svc.UpdateProjectionBaseline(ctx, nil, strPtr(""))
		testutil.AssertNoError(t, err)
		if b.BaseMonth != nil {
			t.Errorf("expected base month cleared, got %s", *b.BaseMonth)
		}
	})

	t.Run("rejects_bad_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewSettingsService(db).UpdateProjectionBaseline(context.Background(), nil, strPtr("enero"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
