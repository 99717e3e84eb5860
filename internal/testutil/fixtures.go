package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finanzas/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Icon: "🏷️"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestFixedExpense creates an active fixed expense with the given provision.
func CreateTestFixedExpense(t *testing.T, db *gorm.DB, categoryID *uint, amount int64) *models.FixedExpense {
	t.Helper()

	fe := &models.FixedExpense{
		Name:            fmt.Sprintf("Test Fixed Expense %d", nextID()),
		CategoryID:      categoryID,
		DueDay:          5,
		ProvisionAmount: amount,
		PaymentMethod:   models.PaymentMethodCard,
		Active:          true,
	}
	if err := db.Create(fe).Error; err != nil {
		t.Fatalf("failed to create test fixed expense: %v", err)
	}
	return fe
}

// CreateTestExpense creates a paid expense on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, categoryID *uint, method models.PaymentMethod, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:          date,
		Amount:        amount,
		CategoryID:    categoryID,
		PaymentMethod: method,
		Description:   fmt.Sprintf("Test Expense %d", nextID()),
		Paid:          true,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestFund creates an income record covering the given month.
func CreateTestFund(t *testing.T, db *gorm.DB, fundType models.FundType, amount int64, monthCovered time.Time) *models.Fund {
	t.Helper()

	fund := &models.Fund{
		Amount:       amount,
		MonthCovered: monthCovered,
		PaymentDate:  monthCovered,
		Type:         fundType,
	}
	if err := db.Create(fund).Error; err != nil {
		t.Fatalf("failed to create test fund: %v", err)
	}
	return fund
}

// CreateTestPeriod stores an accounting period with the given boundaries.
func CreateTestPeriod(t *testing.T, db *gorm.DB, year, month int, start, end time.Time) *models.Period {
	t.Helper()

	p := &models.Period{
		Year:      year,
		Month:     month,
		StartDate: start,
		EndDate:   end,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}
	return p
}

// CreateTestOverride stores a projection override.
func CreateTestOverride(t *testing.T, db *gorm.DB, kind models.OverrideKind, refID uint, year, month int, amount int64) *models.Override {
	t.Helper()

	o := &models.Override{
		Kind:        kind,
		ReferenceID: refID,
		Year:        year,
		Month:       month,
		Amount:      amount,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("failed to create test override: %v", err)
	}
	return o
}
