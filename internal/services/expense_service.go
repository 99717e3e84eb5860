package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/pagination"
)

const maxInstallments = 48

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records an expense. With more than one installment it stores
// one row per month sharing a group ID; the amount is split evenly and the
// remainder goes to the first installment. Only the first installment may be
// marked paid.
func (s *expenseService) CreateExpense(ctx context.Context, in ExpenseInput) ([]models.Expense, error) {
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monto must be greater than zero")
	}
	if in.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fecha is required")
	}
	if in.Installments < 0 || in.Installments > maxInstallments {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("cuotas must be between 1 and %d", maxInstallments))
	}

	db := s.db.WithContext(ctx)
	if err := ensureCategory(db, in.CategoryID); err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCash
	}
	date := in.Date.UTC()

	if in.Installments <= 1 {
		expense := models.Expense{
			Date:          date,
			Amount:        in.Amount,
			CategoryID:    in.CategoryID,
			PaymentMethod: method,
			Description:   in.Description,
			Paid:          in.Paid,
		}
		if err := db.Create(&expense).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return []models.Expense{expense}, nil
	}

	groupUUID, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	groupID := groupUUID.String()

	n := in.Installments
	share := in.Amount / int64(n)
	remainder := in.Amount % int64(n)

	expenses := make([]models.Expense, 0, n)
	for i := 1; i <= n; i++ {
		amount := share
		if i == 1 {
			amount += remainder
		}
		expenses = append(expenses, models.Expense{
			Date:               addMonthsClamped(date, i-1),
			Amount:             amount,
			CategoryID:         in.CategoryID,
			PaymentMethod:      method,
			Description:        fmt.Sprintf("%s (%d/%d)", in.Description, i, n),
			Paid:               i == 1 && in.Paid,
			IsInstallment:      true,
			InstallmentNumber:  i,
			InstallmentsTotal:  n,
			InstallmentGroupID: &groupID,
		})
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&expenses).Error
	}); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// addMonthsClamped adds n months, keeping the day within the target month.
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// ListExpenses returns a paginated, filtered list of expenses, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := applyExpenseFilters(s.db.WithContext(ctx).Model(&models.Expense{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order("fecha DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// applyExpenseFilters narrows q. ToDate is inclusive of the whole day.
func applyExpenseFilters(q *gorm.DB, f ExpenseFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("fecha >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("fecha < ?", f.ToDate.UTC().AddDate(0, 0, 1))
	}
	if f.PaymentMethod != nil {
		q = q.Where("metodo_pago = ?", *f.PaymentMethod)
	}
	if f.CategoryID != nil {
		q = q.Where("categoria_id = ?", *f.CategoryID)
	}
	return q
}

// GetExpenseByID retrieves an expense with its category.
func (s *expenseService) GetExpenseByID(ctx context.Context, id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.WithContext(ctx).Preload("Category").First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// DeleteExpense deletes a single expense row.
func (s *expenseService) DeleteExpense(ctx context.Context, id uint) error {
	expense, err := s.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
