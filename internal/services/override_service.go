package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
)

// overrideService stores manual corrections of projection cells.
type overrideService struct {
	db *gorm.DB
}

// NewOverrideService creates a new OverrideServicer.
func NewOverrideService(db *gorm.DB) OverrideServicer {
	return &overrideService{db: db}
}

// normalizeOverrideKey validates a key and pins the income placeholder reference.
func normalizeOverrideKey(key OverrideKey) (OverrideKey, error) {
	if !key.Kind.Valid() {
		return key, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"tipo must be one of ingreso_sueldo, gasto_fijo, gasto_efectivo")
	}
	if key.Kind == models.OverrideKindIncome {
		key.ReferenceID = models.IncomeOverrideRefID
	} else if key.ReferenceID == 0 {
		return key, apperrors.WithMessage(apperrors.ErrInvalidInput, "referencia_id is required for "+string(key.Kind))
	}
	if key.Year <= 0 {
		return key, apperrors.WithMessage(apperrors.ErrInvalidInput, "anio is required")
	}
	if key.Month < 1 || key.Month > 12 {
		return key, apperrors.WithMessage(apperrors.ErrInvalidInput, "mes must be between 1 and 12")
	}
	return key, nil
}

func whereOverrideKey(db *gorm.DB, key OverrideKey) *gorm.DB {
	return db.Where("tipo = ? AND referencia_id = ? AND anio = ? AND mes = ?",
		key.Kind, key.ReferenceID, key.Year, key.Month)
}

// UpsertOverride stores amount for the cell, replacing any previous amount and note.
func (s *overrideService) UpsertOverride(ctx context.Context, key OverrideKey, amount *int64, note string) (*models.Override, error) {
	key, err := normalizeOverrideKey(key)
	if err != nil {
		return nil, err
	}
	if amount == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monto_override is required")
	}

	override := &models.Override{
		Kind:        key.Kind,
		ReferenceID: key.ReferenceID,
		Year:        key.Year,
		Month:       key.Month,
		Amount:      *amount,
		Note:        note,
	}

	db := s.db.WithContext(ctx)
	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "tipo"}, {Name: "referencia_id"}, {Name: "anio"}, {Name: "mes"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"monto_override", "descripcion", "updated_at"}),
	}).Create(override).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// The conflict path does not report the existing row's ID.
	var stored models.Override
	if err := whereOverrideKey(db, key).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// DeleteOverride removes the override for the cell.
func (s *overrideService) DeleteOverride(ctx context.Context, key OverrideKey) error {
	key, err := normalizeOverrideKey(key)
	if err != nil {
		return err
	}

	result := whereOverrideKey(s.db.WithContext(ctx), key).Delete(&models.Override{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrOverrideNotFound
	}
	return nil
}

// ListOverrides returns every stored override ordered by month.
func (s *overrideService) ListOverrides(ctx context.Context) ([]models.Override, error) {
	var overrides []models.Override
	err := s.db.WithContext(ctx).
		Order("anio ASC, mes ASC, tipo ASC, referencia_id ASC").
		Find(&overrides).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return overrides, nil
}
