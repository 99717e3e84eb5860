package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
)

// fixedExpenseService handles fixed-expense business logic.
type fixedExpenseService struct {
	db *gorm.DB
}

// NewFixedExpenseService creates a new FixedExpenseServicer.
func NewFixedExpenseService(db *gorm.DB) FixedExpenseServicer {
	return &fixedExpenseService{db: db}
}

func validateDueDay(day int) error {
	if day < 1 || day > 31 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "dia_vencimiento must be between 1 and 31")
	}
	return nil
}

// ensureCategory verifies that a referenced category exists.
func ensureCategory(db *gorm.DB, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	var category models.Category
	if err := db.First(&category, *categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateFixedExpense creates a new active fixed expense.
func (s *fixedExpenseService) CreateFixedExpense(ctx context.Context, in FixedExpenseInput) (*models.FixedExpense, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "nombre is required")
	}
	if err := validateDueDay(in.DueDay); err != nil {
		return nil, err
	}
	if in.ProvisionAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monto_provision must not be negative")
	}

	db := s.db.WithContext(ctx)
	if err := ensureCategory(db, in.CategoryID); err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentMethodCard
	}

	expense := &models.FixedExpense{
		Name:            name,
		CategoryID:      in.CategoryID,
		DueDay:          in.DueDay,
		ProvisionAmount: in.ProvisionAmount,
		PaymentMethod:   method,
		Active:          true,
	}
	if err := db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetFixedExpenseByID(ctx, expense.ID)
}

// ListFixedExpenses returns fixed expenses ordered by due day, optionally filtered by active flag.
func (s *fixedExpenseService) ListFixedExpenses(ctx context.Context, active *bool) ([]models.FixedExpense, error) {
	q := s.db.WithContext(ctx).Preload("Category")
	if active != nil {
		q = q.Where("activo = ?", *active)
	}

	var expenses []models.FixedExpense
	if err := q.Order("dia_vencimiento ASC, nombre ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetFixedExpenseByID returns a fixed expense with its category.
func (s *fixedExpenseService) GetFixedExpenseByID(ctx context.Context, id uint) (*models.FixedExpense, error) {
	var expense models.FixedExpense
	if err := s.db.WithContext(ctx).Preload("Category").First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFixedExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateFixedExpense changes the provided fields of a fixed expense.
func (s *fixedExpenseService) UpdateFixedExpense(ctx context.Context, id uint, in FixedExpenseUpdate) (*models.FixedExpense, error) {
	expense, err := s.GetFixedExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	updates := make(map[string]interface{})
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "nombre cannot be empty")
		}
		updates["nombre"] = name
	}
	if in.CategoryID != nil {
		if err := ensureCategory(db, in.CategoryID); err != nil {
			return nil, err
		}
		updates["categoria_id"] = *in.CategoryID
	}
	if in.DueDay != nil {
		if err := validateDueDay(*in.DueDay); err != nil {
			return nil, err
		}
		updates["dia_vencimiento"] = *in.DueDay
	}
	if in.ProvisionAmount != nil {
		if *in.ProvisionAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monto_provision must not be negative")
		}
		updates["monto_provision"] = *in.ProvisionAmount
	}
	if in.PaymentMethod != nil {
		updates["metodo_pago"] = *in.PaymentMethod
	}
	if in.Active != nil {
		updates["activo"] = *in.Active
	}

	if len(updates) > 0 {
		if err := db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetFixedExpenseByID(ctx, id)
}

// DeactivateFixedExpense marks a fixed expense inactive. Rows are kept so
// overrides and history still resolve.
func (s *fixedExpenseService) DeactivateFixedExpense(ctx context.Context, id uint) error {
	expense, err := s.GetFixedExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(expense).Update("activo", false).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
