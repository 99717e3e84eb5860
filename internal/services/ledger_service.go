package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
)

// ledgerService reads the records a projection is computed from.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerReader.
func NewLedgerService(db *gorm.DB) LedgerReader {
	return &ledgerService{db: db}
}

// ActiveFixedExpenses returns active fixed expenses ordered by name, with their category.
func (s *ledgerService) ActiveFixedExpenses(ctx context.Context) ([]models.FixedExpense, error) {
	var expenses []models.FixedExpense
	if err := s.db.WithContext(ctx).
		Preload("Category").
		Where("activo = ?", true).
		Order("nombre ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// Categories returns every category ordered by name.
func (s *ledgerService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("nombre ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

type categoryTotal struct {
	CategoryID uint
	Total      int64
}

// CashTotalsByCategory sums categorized cash expenses dated in [from, to).
func (s *ledgerService) CashTotalsByCategory(ctx context.Context, from, to time.Time) (map[uint]int64, error) {
	var rows []categoryTotal
	err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("categoria_id AS category_id, COALESCE(SUM(monto), 0) AS total").
		Where("metodo_pago = ? AND categoria_id IS NOT NULL AND fecha >= ? AND fecha < ?",
			models.PaymentMethodCash, from.UTC(), to.UTC()).
		Group("categoria_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[uint]int64, len(rows))
	for _, r := range rows {
		totals[r.CategoryID] = r.Total
	}
	return totals, nil
}

// MinSalary returns the smallest salary amount ever recorded, or 0 when none exists.
func (s *ledgerService) MinSalary(ctx context.Context) (int64, error) {
	var minSalary int64
	err := s.db.WithContext(ctx).
		Model(&models.Fund{}).
		Select("COALESCE(MIN(monto), 0)").
		Where("tipo = ?", models.FundTypeSalary).
		Scan(&minSalary).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return minSalary, nil
}
