package services

import (
	"context"
	"time"

	"finanzas/internal/models"
	"finanzas/internal/pagination"
	"finanzas/internal/period"
	"finanzas/internal/projection"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, name, icon, color string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, name, icon, color *string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// FixedExpenseInput holds the fields of a new fixed expense.
type FixedExpenseInput struct {
	Name            string
	CategoryID      *uint
	DueDay          int
	ProvisionAmount int64
	PaymentMethod   models.PaymentMethod
}

// FixedExpenseUpdate holds optional fields to change on a fixed expense.
type FixedExpenseUpdate struct {
	Name            *string
	CategoryID      *uint
	DueDay          *int
	ProvisionAmount *int64
	PaymentMethod   *models.PaymentMethod
	Active          *bool
}

// FixedExpenseServicer defines the contract for fixed-expense business logic.
type FixedExpenseServicer interface {
	CreateFixedExpense(ctx context.Context, in FixedExpenseInput) (*models.FixedExpense, error)
	ListFixedExpenses(ctx context.Context, active *bool) ([]models.FixedExpense, error)
	GetFixedExpenseByID(ctx context.Context, id uint) (*models.FixedExpense, error)
	UpdateFixedExpense(ctx context.Context, id uint, in FixedExpenseUpdate) (*models.FixedExpense, error)
	DeactivateFixedExpense(ctx context.Context, id uint) error
}

// ExpenseInput holds the fields of a new expense. Installments > 1 splits the
// amount into that many monthly rows.
type ExpenseInput struct {
	Date          time.Time
	Amount        int64
	CategoryID    *uint
	PaymentMethod models.PaymentMethod
	Description   string
	Paid          bool
	Installments  int
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate      *time.Time
	ToDate        *time.Time
	PaymentMethod *models.PaymentMethod
	CategoryID    *uint
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, in ExpenseInput) ([]models.Expense, error)
	ListExpenses(ctx context.Context, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(ctx context.Context, id uint) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id uint) error
}

// FundInput holds the fields of a new income record.
type FundInput struct {
	Amount       int64
	MonthCovered time.Time
	PaymentDate  time.Time
	Type         models.FundType
	Description  string
}

// FundSummary is the liquid balance derived from recorded income and paid cash expenses.
type FundSummary struct {
	TotalIncome       int64      `json:"total_ingresos"`
	TotalCashExpenses int64      `json:"total_egresos_efectivo"`
	LiquidBalance     int64      `json:"saldo_liquido"`
	FirstMonthCovered *time.Time `json:"primer_mes_que_cubre"`
	CycleStart        *time.Time `json:"fecha_inicio_ciclo"`
}

// FundOverview lists income records with their summary.
type FundOverview struct {
	Funds   []models.Fund `json:"fondos"`
	Summary FundSummary   `json:"resumen"`
}

// FundServicer defines the contract for income-related business logic.
type FundServicer interface {
	CreateFund(ctx context.Context, in FundInput) (*models.Fund, error)
	ListFunds(ctx context.Context) (*FundOverview, error)
}

// LedgerReader is the read-only view of the ledgers a projection consumes.
type LedgerReader interface {
	ActiveFixedExpenses(ctx context.Context) ([]models.FixedExpense, error)
	Categories(ctx context.Context) ([]models.Category, error)
	// CashTotalsByCategory sums cash expenses dated in [from, to) per category.
	CashTotalsByCategory(ctx context.Context, from, to time.Time) (map[uint]int64, error)
	// MinSalary returns the smallest salary ever recorded, or 0.
	MinSalary(ctx context.Context) (int64, error)
}

// OverrideKey addresses one overridable projection cell.
type OverrideKey struct {
	Kind        models.OverrideKind
	ReferenceID uint
	Year        int
	Month       int
}

// OverrideServicer defines the contract for the projection override store.
type OverrideServicer interface {
	UpsertOverride(ctx context.Context, key OverrideKey, amount *int64, note string) (*models.Override, error)
	DeleteOverride(ctx context.Context, key OverrideKey) error
	ListOverrides(ctx context.Context) ([]models.Override, error)
}

// ProjectionConfig is the resolved baseline a projection was computed from.
type ProjectionConfig struct {
	OpeningBalance   int64  `json:"saldo_inicial"`
	BaseMonth        string `json:"fecha_base"`
	MinSalary        int64  `json:"sueldo_minimo"`
	Months           int    `json:"meses_proyeccion"`
	CurrentPeriod    string `json:"periodo_actual"`
	AverageCashSpend int64  `json:"promedio_gasto_efectivo"`
}

// ProjectionResult is the full projection response.
type ProjectionResult struct {
	Rows          []projection.Row      `json:"proyeccion"`
	Config        ProjectionConfig      `json:"config"`
	FixedExpenses []models.FixedExpense `json:"gastos_fijos"`
	Categories    []models.Category     `json:"categorias"`
}

// ProjectionServicer defines the contract for computing projections.
type ProjectionServicer interface {
	Project(ctx context.Context, months int) (*ProjectionResult, error)
}

// PeriodInput holds the fields of a period record to create or replace.
type PeriodInput struct {
	Year        int
	Month       int
	StartDate   *time.Time
	EndDate     *time.Time
	Provisional bool
	InvoiceDate *time.Time
	Notes       string
}

// GenerateResult reports how many period records were created.
type GenerateResult struct {
	Created int `json:"creados"`
	Total   int `json:"total"`
}

// PeriodServicer defines the contract for accounting period records.
type PeriodServicer interface {
	Current(ctx context.Context) (*models.Period, error)
	Get(ctx context.Context, year, month int) (*models.Period, error)
	List(ctx context.Context, limit int) ([]models.Period, error)
	Upsert(ctx context.Context, in PeriodInput) (*models.Period, error)
	Latest(ctx context.Context) (*models.Period, error)
	GenerateFromExpenses(ctx context.Context) (*GenerateResult, error)
}

// ProjectionBaseline holds the settings that seed a projection.
type ProjectionBaseline struct {
	OpeningBalance int64   `json:"saldo_inicial"`
	BaseMonth      *string `json:"fecha_base"`
}

// SettingsServicer defines the contract for projection settings.
type SettingsServicer interface {
	GetProjectionBaseline(ctx context.Context) (*ProjectionBaseline, error)
	UpdateProjectionBaseline(ctx context.Context, openingBalance *int64, baseMonth *string) (*ProjectionBaseline, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(ctx context.Context, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// currentPeriodOf resolves the period containing now.
func currentPeriodOf(clock Clock) period.Period {
	return period.Resolve(clock().UTC())
}
