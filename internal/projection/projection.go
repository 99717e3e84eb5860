// Package projection computes the rolling two-table cash-flow forecast.
//
// The fixed table is driven by recurring fixed expenses; the cash table by
// posted cash expenses (past and current months) or by a snapshot of the
// current period's cash spending (future months). Both tables share the
// monthly income figure but carry independent running balances. Manual
// overrides shadow any computed cell without touching the underlying data.
//
// Project is a pure function: all data is gathered beforehand into an Input.
package projection

import (
	"errors"
	"sort"
	"time"

	"finanzas/internal/models"
	"finanzas/internal/period"
)

// ErrInvalidMonths is returned when fewer than one month is requested.
var ErrInvalidMonths = errors.New("months must be at least 1")

// Status classifies a month by how much of its income it retains.
type Status string

const (
	StatusSurplus  Status = "superavit"
	StatusBalanced Status = "equilibrio"
	StatusDeficit  Status = "deficit"
)

// Input is everything a projection needs, already fetched.
type Input struct {
	// Base is the first projected month.
	Base period.MonthKey
	// Current is the month of the current accounting period.
	Current period.MonthKey
	// OpeningBalance seeds both tables on the first month.
	OpeningBalance int64
	// BaseIncome is used for every month without an income override.
	BaseIncome int64

	// FixedExpenses are the active fixed expenses, with Category loaded.
	FixedExpenses []models.FixedExpense
	Categories    []models.Category
	Overrides     OverrideSet

	// CashActuals holds cash totals per category ID for each past or
	// current calendar month. Missing months count as no spending.
	CashActuals map[period.MonthKey]map[uint]int64
	// CurrentSnapshot holds the current period's cash totals per category,
	// used as the estimate for every future month.
	CurrentSnapshot map[uint]int64
}

// FixedDetail is one fixed expense's resolved amount for a month.
type FixedDetail struct {
	ID             uint   `json:"id"`
	Name           string `json:"nombre"`
	Amount         int64  `json:"monto"`
	OriginalAmount int64  `json:"monto_original"`
	Overridden     bool   `json:"tiene_override"`
	CategoryName   string `json:"categoria"`
	DueDay         int    `json:"dia_vencimiento"`
}

// CashDetail is one category's resolved cash spending for a month.
type CashDetail struct {
	CategoryID     uint   `json:"categoria_id"`
	CategoryName   string `json:"categoria_nombre"`
	CategoryIcon   string `json:"categoria_icono"`
	Amount         int64  `json:"monto"`
	OriginalAmount int64  `json:"monto_original"`
	Overridden     bool   `json:"tiene_override"`
}

// FixedTable holds the fixed-expense ledger figures for one month.
type FixedTable struct {
	Opening int64         `json:"saldo_inicial"`
	Closing int64         `json:"saldo_final"`
	Total   int64         `json:"gastos_fijos"`
	Detail  []FixedDetail `json:"gastos_fijos_detalle"`
}

// CashTable holds the cash-expense ledger figures for one month.
type CashTable struct {
	Opening int64        `json:"saldo_inicial_tabla2"`
	Closing int64        `json:"saldo_final_con_efectivo"`
	Total   int64        `json:"gastos_efectivo"`
	Detail  []CashDetail `json:"gastos_efectivo_detalle"`
}

// Row is one projected month. Both tables are flattened into the JSON object.
type Row struct {
	Date        time.Time `json:"mes"`
	Label       string    `json:"mes_nombre"`
	MonthNumber int       `json:"mes_numero"`
	Year        int       `json:"anio"`

	FixedTable
	CashTable

	Income           int64 `json:"ingresos"`
	IncomeOverridden bool  `json:"ingresos_tiene_override"`

	Variation   int64   `json:"variacion"`
	SolvencyPct float64 `json:"solvencia_porcentaje"`
	Status      Status  `json:"estado"`
	IsPast      bool    `json:"es_pasado"`
	IsCurrent   bool    `json:"es_periodo_actual"`
	IsFuture    bool    `json:"es_futuro"`
}

// Project computes months rows starting at in.Base.
func Project(in Input, months int) ([]Row, error) {
	if months < 1 {
		return nil, ErrInvalidMonths
	}

	fixed := sortedFixedExpenses(in.FixedExpenses)
	categories := sortedCategories(in.Categories)

	rows := make([]Row, 0, months)
	fixedBalance, cashBalance := in.OpeningBalance, in.OpeningBalance
	for i := 0; i < months; i++ {
		row := projectMonth(in, fixed, categories, in.Base.Add(i), fixedBalance, cashBalance)
		rows = append(rows, row)
		fixedBalance, cashBalance = row.FixedTable.Closing, row.CashTable.Closing
	}
	return rows, nil
}

// projectMonth computes a single month from the previous closing balances.
func projectMonth(
	in Input,
	fixed []models.FixedExpense,
	categories []models.Category,
	month period.MonthKey,
	fixedOpening, cashOpening int64,
) Row {
	cmp := month.Compare(in.Current)

	income, incomeOverridden := in.Overrides.Resolve(
		models.OverrideKindIncome, models.IncomeOverrideRefID, month, in.BaseIncome)

	fixedTable := resolveFixedTable(fixed, in.Overrides, month, fixedOpening, income)

	var cashDetail []CashDetail
	if cmp <= 0 {
		cashDetail = resolveActualCash(categories, in.CashActuals[month], in.Overrides, month)
	} else {
		cashDetail = resolveProjectedCash(categories, in.CurrentSnapshot, in.Overrides, month)
	}
	cashTable := CashTable{Opening: cashOpening, Detail: cashDetail}
	for _, d := range cashDetail {
		cashTable.Total += d.Amount
	}
	cashTable.Closing = cashOpening + income - cashTable.Total

	// Metrics come from the fixed table only.
	variation := fixedTable.Closing - fixedTable.Opening

	return Row{
		Date:             month.FirstDay(),
		Label:            month.Label(),
		MonthNumber:      month.Month,
		Year:             month.Year,
		FixedTable:       fixedTable,
		CashTable:        cashTable,
		Income:           income,
		IncomeOverridden: incomeOverridden,
		Variation:        variation,
		SolvencyPct:      solvency(variation, income),
		Status:           classify(variation, income),
		IsPast:           cmp < 0,
		IsCurrent:        cmp == 0,
		IsFuture:         cmp > 0,
	}
}

func resolveFixedTable(fixed []models.FixedExpense, overrides OverrideSet, month period.MonthKey, opening, income int64) FixedTable {
	table := FixedTable{Opening: opening, Detail: make([]FixedDetail, 0, len(fixed))}
	for i := range fixed {
		fe := &fixed[i]
		amount, overridden := overrides.Resolve(models.OverrideKindFixed, fe.ID, month, fe.ProvisionAmount)
		table.Detail = append(table.Detail, FixedDetail{
			ID:             fe.ID,
			Name:           fe.Name,
			Amount:         amount,
			OriginalAmount: fe.ProvisionAmount,
			Overridden:     overridden,
			CategoryName:   fe.CategoryName(),
			DueDay:         fe.DueDay,
		})
		table.Total += amount
	}
	table.Closing = opening + income - table.Total
	return table
}

// resolveActualCash builds the cash detail of a past or current month from
// posted totals. Categories that end up with nothing spent are omitted.
func resolveActualCash(categories []models.Category, actuals map[uint]int64, overrides OverrideSet, month period.MonthKey) []CashDetail {
	detail := make([]CashDetail, 0, len(actuals))
	for _, cat := range categories {
		base := actuals[cat.ID]
		amount, overridden := overrides.Resolve(models.OverrideKindCash, cat.ID, month, base)
		if amount <= 0 {
			continue
		}
		detail = append(detail, newCashDetail(cat, amount, base, overridden))
	}
	return detail
}

// resolveProjectedCash builds the cash detail of a future month from the
// current-period snapshot. A category is listed when the snapshot has
// spending for it or the user overrode it for this month.
func resolveProjectedCash(categories []models.Category, snapshot map[uint]int64, overrides OverrideSet, month period.MonthKey) []CashDetail {
	detail := make([]CashDetail, 0, len(snapshot))
	for _, cat := range categories {
		base := snapshot[cat.ID]
		amount, overridden := overrides.Resolve(models.OverrideKindCash, cat.ID, month, base)
		if base <= 0 && !overridden {
			continue
		}
		detail = append(detail, newCashDetail(cat, amount, base, overridden))
	}
	return detail
}

func newCashDetail(cat models.Category, amount, original int64, overridden bool) CashDetail {
	icon := cat.Icon
	if icon == "" {
		icon = "💰"
	}
	return CashDetail{
		CategoryID:     cat.ID,
		CategoryName:   cat.Name,
		CategoryIcon:   icon,
		Amount:         amount,
		OriginalAmount: original,
		Overridden:     overridden,
	}
}

func solvency(variation, income int64) float64 {
	if income == 0 {
		return 0
	}
	return float64(variation) / float64(income) * 100
}

// classify compares variation against 10% of income without rounding.
func classify(variation, income int64) Status {
	switch {
	case variation*10 > income:
		return StatusSurplus
	case variation < 0:
		return StatusDeficit
	default:
		return StatusBalanced
	}
}

func sortedFixedExpenses(in []models.FixedExpense) []models.FixedExpense {
	out := make([]models.FixedExpense, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sortedCategories(in []models.Category) []models.Category {
	out := make([]models.Category, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
