package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/models"
	"finanzas/internal/period"
)

// settingsService reads and writes app_config entries.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetProjectionBaseline returns the opening balance (0 when unset) and base month.
func (s *settingsService) GetProjectionBaseline(ctx context.Context) (*ProjectionBaseline, error) {
	var settings []models.Setting
	err := s.db.WithContext(ctx).
		Where("clave IN ?", []string{models.SettingOpeningBalance, models.SettingProjectionBase}).
		Find(&settings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	baseline := &ProjectionBaseline{}
	for _, st := range settings {
		switch st.Key {
		case models.SettingOpeningBalance:
			if st.NumericValue != nil {
				baseline.OpeningBalance = *st.NumericValue
			}
		case models.SettingProjectionBase:
			if st.TextValue != nil && *st.TextValue != "" {
				v := *st.TextValue
				baseline.BaseMonth = &v
			}
		}
	}
	return baseline, nil
}

// UpdateProjectionBaseline changes the given settings. An empty base month clears it.
func (s *settingsService) UpdateProjectionBaseline(ctx context.Context, openingBalance *int64, baseMonth *string) (*ProjectionBaseline, error) {
	if baseMonth != nil && *baseMonth != "" {
		if _, err := period.ParseMonthKey(*baseMonth); err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fecha_base must be YYYY-MM")
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if openingBalance != nil {
			if err := upsertSetting(tx, models.Setting{Key: models.SettingOpeningBalance, NumericValue: openingBalance}); err != nil {
				return err
			}
		}
		if baseMonth != nil {
			var text *string
			if *baseMonth != "" {
				text = baseMonth
			}
			if err := upsertSetting(tx, models.Setting{Key: models.SettingProjectionBase, TextValue: text}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetProjectionBaseline(ctx)
}

func upsertSetting(tx *gorm.DB, setting models.Setting) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor_numeric", "valor_text", "updated_at"}),
	}).Create(&setting).Error
}
