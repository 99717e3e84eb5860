package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/logger"
	"finanzas/internal/models"
	"finanzas/internal/period"
)

const defaultPeriodListLimit = 12

// periodService manages stored accounting periods.
type periodService struct {
	db    *gorm.DB
	clock Clock
}

// NewPeriodService creates a new PeriodServicer. A nil clock uses time.Now.
func NewPeriodService(db *gorm.DB, clock Clock) PeriodServicer {
	if clock == nil {
		clock = time.Now
	}
	return &periodService{db: db, clock: clock}
}

func provisionalRecord(p period.Period) models.Period {
	return models.Period{
		Year:        p.Year,
		Month:       p.Month,
		StartDate:   p.Start,
		EndDate:     p.End,
		Provisional: true,
	}
}

func (s *periodService) find(ctx context.Context, year, month int) (*models.Period, error) {
	var record models.Period
	err := s.db.WithContext(ctx).Where("anio = ? AND mes = ?", year, month).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// Current returns the record for the period containing today, creating a
// provisional one when missing.
func (s *periodService) Current(ctx context.Context) (*models.Period, error) {
	p := currentPeriodOf(s.clock)

	record := provisionalRecord(p)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stored, err := s.find(ctx, p.Year, p.Month)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, errors.New("current period missing after insert"))
	}
	return stored, nil
}

// Get returns the stored period or, when none exists, an unsaved provisional one (ID 0).
func (s *periodService) Get(ctx context.Context, year, month int) (*models.Period, error) {
	if !(period.MonthKey{Year: year, Month: month}).Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "anio and mes must name a valid month")
	}

	stored, err := s.find(ctx, year, month)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return stored, nil
	}
	record := provisionalRecord(period.ForMonth(year, month))
	return &record, nil
}

// List returns the most recent periods first.
func (s *periodService) List(ctx context.Context, limit int) ([]models.Period, error) {
	if limit <= 0 {
		limit = defaultPeriodListLimit
	}

	var records []models.Period
	if err := s.db.WithContext(ctx).
		Order("fecha_inicio DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// Upsert creates or replaces the period record for (anio, mes). Missing
// boundaries default to the 26th-25th rule.
func (s *periodService) Upsert(ctx context.Context, in PeriodInput) (*models.Period, error) {
	if !(period.MonthKey{Year: in.Year, Month: in.Month}).Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "anio and mes must name a valid month")
	}

	record := provisionalRecord(period.ForMonth(in.Year, in.Month))
	record.Provisional = in.Provisional
	record.InvoiceDate = in.InvoiceDate
	record.Notes = in.Notes
	if in.StartDate != nil {
		record.StartDate = in.StartDate.UTC()
	}
	if in.EndDate != nil {
		record.EndDate = in.EndDate.UTC()
	}
	if record.EndDate.Before(record.StartDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "fecha_fin must not be before fecha_inicio")
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "mes"}, {Name: "anio"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"fecha_inicio", "fecha_fin", "es_provisional", "fecha_factura", "notas", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.find(ctx, in.Year, in.Month)
}

// Latest returns the period with the most recent start date, or nil when none is stored.
func (s *periodService) Latest(ctx context.Context) (*models.Period, error) {
	var record models.Period
	err := s.db.WithContext(ctx).Order("fecha_inicio DESC").First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// GenerateFromExpenses creates provisional records for every period from the
// oldest expense through the current one, leaving existing records untouched.
func (s *periodService) GenerateFromExpenses(ctx context.Context) (*GenerateResult, error) {
	db := s.db.WithContext(ctx)

	var oldest models.Expense
	if err := db.Order("fecha ASC").First(&oldest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoExpenses
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	first := period.Resolve(oldest.Date.UTC()).Key()
	last := currentPeriodOf(s.clock).Key()

	result := &GenerateResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for k := first; !k.After(last); k = k.Add(1) {
			record := provisionalRecord(period.ForMonth(k.Year, k.Month))
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
			if res.Error != nil {
				return res.Error
			}
			result.Created += int(res.RowsAffected)
			result.Total++
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.FromContext(ctx).Infow("generated periods from expenses",
		"from", first.String(), "to", last.String(), "created", result.Created)
	return result, nil
}
