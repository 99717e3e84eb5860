package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "finanzas/internal/errors"
	"finanzas/internal/logger"
	"finanzas/internal/models"
	"finanzas/internal/period"
	"finanzas/internal/projection"
)

const (
	// averagePeriods is how many periods before the current one feed the
	// average cash spend.
	averagePeriods = 3
	// maxConcurrentFetches bounds the per-month actuals queries.
	maxConcurrentFetches = 4
)

// projectionService gathers ledger data and runs the projection engine.
type projectionService struct {
	ledger    LedgerReader
	overrides OverrideServicer
	periods   PeriodServicer
	settings  SettingsServicer
	clock     Clock
}

// NewProjectionService creates a new ProjectionServicer. A nil clock uses time.Now.
func NewProjectionService(
	ledger LedgerReader,
	overrides OverrideServicer,
	periods PeriodServicer,
	settings SettingsServicer,
	clock Clock,
) ProjectionServicer {
	if clock == nil {
		clock = time.Now
	}
	return &projectionService{
		ledger:    ledger,
		overrides: overrides,
		periods:   periods,
		settings:  settings,
		clock:     clock,
	}
}

// baseData is everything fetched before the month range is known.
type baseData struct {
	baseline      *ProjectionBaseline
	latest        *models.Period
	minSalary     int64
	fixedExpenses []models.FixedExpense
	categories    []models.Category
	overrides     []models.Override
}

// Project computes a months-long projection starting at the configured base month.
func (s *projectionService) Project(ctx context.Context, months int) (*ProjectionResult, error) {
	if months < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "meses must be at least 1")
	}

	data, err := s.fetchBase(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.resolveCurrent(data.latest)
	if err != nil {
		return nil, err
	}

	base := current.Key()
	if data.baseline.BaseMonth != nil {
		base, err = period.ParseMonthKey(*data.baseline.BaseMonth)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, err)
		}
	}

	actuals, snapshot, average, err := s.fetchCash(ctx, base, months, current)
	if err != nil {
		return nil, err
	}

	rows, err := projection.Project(projection.Input{
		Base:            base,
		Current:         current.Key(),
		OpeningBalance:  data.baseline.OpeningBalance,
		BaseIncome:      data.minSalary,
		FixedExpenses:   data.fixedExpenses,
		Categories:      data.categories,
		Overrides:       projection.NewOverrideSet(data.overrides),
		CashActuals:     actuals,
		CurrentSnapshot: snapshot,
	}, months)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	logger.FromContext(ctx).Debugw("projection computed",
		"base", base.String(),
		"current", current.Key().String(),
		"months", months,
		"overrides", len(data.overrides),
	)

	return &ProjectionResult{
		Rows: rows,
		Config: ProjectionConfig{
			OpeningBalance:   data.baseline.OpeningBalance,
			BaseMonth:        base.String(),
			MinSalary:        data.minSalary,
			Months:           months,
			CurrentPeriod:    current.Key().String(),
			AverageCashSpend: average,
		},
		FixedExpenses: data.fixedExpenses,
		Categories:    data.categories,
	}, nil
}

// fetchBase runs the independent reads concurrently.
func (s *projectionService) fetchBase(ctx context.Context) (*baseData, error) {
	var data baseData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.baseline, err = s.settings.GetProjectionBaseline(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.latest, err = s.periods.Latest(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.minSalary, err = s.ledger.MinSalary(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.fixedExpenses, err = s.ledger.ActiveFixedExpenses(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.categories, err = s.ledger.Categories(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.overrides, err = s.overrides.ListOverrides(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// resolveCurrent returns the most recently stored period, or the calendar
// period of now when none is stored.
func (s *projectionService) resolveCurrent(latest *models.Period) (period.Period, error) {
	if latest == nil {
		return currentPeriodOf(s.clock), nil
	}

	key := period.MonthKey{Year: latest.Year, Month: latest.Month}
	if !key.Valid() {
		return period.Period{}, apperrors.WithMessage(apperrors.ErrConfiguration,
			fmt.Sprintf("stored period %d-%d is not a valid month", latest.Year, latest.Month))
	}
	if latest.EndDate.Before(latest.StartDate) {
		return period.Period{}, apperrors.WithMessage(apperrors.ErrConfiguration,
			fmt.Sprintf("stored period %s ends before it starts", key))
	}
	return period.Period{
		Year:  key.Year,
		Month: key.Month,
		Start: latest.StartDate.UTC(),
		End:   latest.EndDate.UTC(),
	}, nil
}

// fetchCash loads cash actuals for every past or current month in range, the
// current-period snapshot, and the average spend of the preceding periods.
func (s *projectionService) fetchCash(
	ctx context.Context,
	base period.MonthKey,
	months int,
	current period.Period,
) (map[period.MonthKey]map[uint]int64, map[uint]int64, int64, error) {
	var actualMonths []period.MonthKey
	for i := 0; i < months; i++ {
		k := base.Add(i)
		if k.After(current.Key()) {
			break
		}
		actualMonths = append(actualMonths, k)
	}

	totals := make([]map[uint]int64, len(actualMonths))
	var snapshot, previous map[uint]int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	g.Go(func() (err error) {
		snapshot, err = s.ledger.CashTotalsByCategory(gctx, current.Start, current.EndExclusive())
		return err
	})
	g.Go(func() (err error) {
		from := current.Key().Add(-averagePeriods)
		previous, err = s.ledger.CashTotalsByCategory(gctx,
			period.ForMonth(from.Year, from.Month).Start, current.Start)
		return err
	})
	for i, k := range actualMonths {
		g.Go(func() (err error) {
			from, to := k.CalendarRange()
			totals[i], err = s.ledger.CashTotalsByCategory(gctx, from, to)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, 0, err
	}

	actuals := make(map[period.MonthKey]map[uint]int64, len(actualMonths))
	for i, k := range actualMonths {
		actuals[k] = totals[i]
	}

	var spent int64
	for _, v := range previous {
		spent += v
	}
	return actuals, snapshot, spent / averagePeriods, nil
}
