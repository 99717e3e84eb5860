package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/period"
)

// fundService handles income records.
type fundService struct {
	db *gorm.DB
}

// NewFundService creates a new FundServicer.
func NewFundService(db *gorm.DB) FundServicer {
	return &fundService{db: db}
}

// CreateFund records an income entry. MonthCovered is normalized to the
// first day of its month.
func (s *fundService) CreateFund(ctx context.Context, in FundInput) (*models.Fund, error) {
	if in.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monto must be greater than zero")
	}
	if in.MonthCovered.IsZero() || in.PaymentDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "mes_que_cubre and fecha_pago are required")
	}
	switch in.Type {
	case models.FundTypeSalary, models.FundTypeExtra:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tipo must be sueldo or ingreso_extra")
	}

	fund := &models.Fund{
		Amount:       in.Amount,
		MonthCovered: period.KeyOf(in.MonthCovered.UTC()).FirstDay(),
		PaymentDate:  in.PaymentDate.UTC(),
		Type:         in.Type,
		Description:  in.Description,
	}
	if err := s.db.WithContext(ctx).Create(fund).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return fund, nil
}

// ListFunds returns all income records, newest payment first, with the liquid
// balance: every recorded income minus the paid cash expenses since the start
// of the period of the earliest month covered.
func (s *fundService) ListFunds(ctx context.Context) (*FundOverview, error) {
	db := s.db.WithContext(ctx)

	var funds []models.Fund
	if err := db.Order("fecha_pago DESC, id DESC").Find(&funds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	overview := &FundOverview{Funds: funds}
	if len(funds) == 0 {
		overview.Funds = []models.Fund{}
		return overview, nil
	}

	first := funds[0].MonthCovered
	for _, f := range funds {
		overview.Summary.TotalIncome += f.Amount
		if f.MonthCovered.Before(first) {
			first = f.MonthCovered
		}
	}
	firstKey := period.KeyOf(first.UTC())
	cycleStart := period.ForMonth(firstKey.Year, firstKey.Month).Start

	var spent int64
	err := db.Model(&models.Expense{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("metodo_pago = ? AND pagado = ? AND fecha >= ?", models.PaymentMethodCash, true, cycleStart).
		Scan(&spent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	firstDay := firstKey.FirstDay()
	overview.Summary.TotalCashExpenses = spent
	overview.Summary.LiquidBalance = overview.Summary.TotalIncome - spent
	overview.Summary.FirstMonthCovered = &firstDay
	overview.Summary.CycleStart = &cycleStart
	return overview, nil
}
