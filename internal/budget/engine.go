// Package budget implements the carry-forward accounting engine.
//
// The engine derives the effective budget of a category for a month by
// folding forward every prior month's surplus or deficit. It only talks
// to its stores through the PeriodStore and Ledger interfaces so that
// the arithmetic can be tested without a real database.
package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/kevmck451/Money-Tracker/internal/models"
	"github.com/kevmck451/Money-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

// PeriodStore provides access to the budget periods of categories.
type PeriodStore interface {
	// GetOrCreate returns the budget period for the given category and
	// month, creating it with defaultBase if it does not exist yet.
	// The defaultBase argument only matters on first creation.
	GetOrCreate(categoryID uuid.UUID, month types.Month, defaultBase decimal.Decimal) (models.BudgetPeriod, error)

	// MostRecentOnOrBefore returns the latest period with a month less
	// than or equal to the given month, or nil when there is none.
	MostRecentOnOrBefore(categoryID uuid.UUID, month types.Month) (*models.BudgetPeriod, error)

	// FirstMonth returns the month of the category's earliest budget
	// period, or nil when the category has none.
	FirstMonth(categoryID uuid.UUID) (*types.Month, error)
}

// Ledger provides access to the logged purchases of categories.
type Ledger interface {
	// SumSpent returns the sum of all purchase amounts for the category
	// in the half-open interval [from, to). It returns zero when no
	// purchases match.
	SumSpent(categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error)

	// FirstPurchase returns the timestamp of the category's earliest
	// purchase, or nil when the category has none.
	FirstPurchase(categoryID uuid.UUID) (*time.Time, error)
}

// Summary describes the budget situation of one category for one month.
type Summary struct {
	Base      decimal.Decimal `json:"base"`      // The configured base budget for the month
	CarryIn   decimal.Decimal `json:"carryIn"`   // Accumulated surplus or deficit from all prior months
	Effective decimal.Decimal `json:"effective"` // Base plus carry, floored at zero
	Spent     decimal.Decimal `json:"spent"`     // Spend during the month
	Remaining decimal.Decimal `json:"remaining"` // Effective budget minus spend
	Pct       float64         `json:"pct"`       // Percentage of the effective budget spent
	OverBy    decimal.Decimal `json:"overBy"`    // How far the category is overspent
}

// Engine computes effective budgets by walking a category's history
// month by month.
type Engine struct {
	periods  PeriodStore
	ledger   Ledger
	defaults map[string]decimal.Decimal
}

// New returns an Engine using the given stores.
//
// defaults maps category names to their configured default base budget.
// It is captured at construction; the engine never reads configuration
// on its own.
func New(periods PeriodStore, ledger Ledger, defaults map[string]decimal.Decimal) *Engine {
	return &Engine{
		periods:  periods,
		ledger:   ledger,
		defaults: defaults,
	}
}

// DefaultBase returns the configured default base budget for a category
// name, zero if none is configured.
func (e *Engine) DefaultBase(name string) decimal.Decimal {
	return e.defaults[name]
}

// activityStart returns the month of the category's first activity,
// which is the earlier of its first purchase and its first explicit
// budget period. ok is false when the category has neither.
func (e *Engine) activityStart(category models.Category) (start types.Month, ok bool, err error) {
	firstPurchase, err := e.ledger.FirstPurchase(category.ID)
	if err != nil {
		return types.Month{}, false, err
	}

	firstPeriod, err := e.periods.FirstMonth(category.ID)
	if err != nil {
		return types.Month{}, false, err
	}

	if firstPurchase == nil && firstPeriod == nil {
		return types.Month{}, false, nil
	}

	if firstPurchase != nil {
		start = types.MonthOf(*firstPurchase)
	}

	if firstPeriod != nil && (firstPurchase == nil || firstPeriod.Before(start)) {
		start = *firstPeriod
	}

	return start, true, nil
}

// CumulativeCarry computes the accumulated surplus or deficit of the
// category for all months strictly before target.
//
// The walk materializes a budget period for every visited month that
// does not have one yet, seeded from the most recent prior period's
// base or the configured default. This backfill makes the walk
// deterministic: later calls read the stored rows instead of
// recomputing defaults.
//
// The cost is O(months since first activity) on every call. Household
// histories span at most a few hundred months, so no running total is
// persisted.
func (e *Engine) CumulativeCarry(category models.Category, target types.Month) (decimal.Decimal, error) {
	start, ok, err := e.activityStart(category)
	if err != nil {
		return decimal.Zero, err
	}

	// A category without purchases and periods carries nothing.
	if !ok {
		return decimal.Zero, nil
	}

	carry := decimal.Zero
	for month := start; month.Before(target); month = month.AddDate(0, 1) {
		next := month.AddDate(0, 1)

		seed, err := e.seedBase(category, month)
		if err != nil {
			return decimal.Zero, err
		}

		period, err := e.periods.GetOrCreate(category.ID, month, seed)
		if err != nil {
			return decimal.Zero, err
		}

		spent, err := e.ledger.SumSpent(category.ID, time.Time(month), time.Time(next))
		if err != nil {
			return decimal.Zero, err
		}

		carry = carry.Add(period.BaseBudget.Sub(spent))
	}

	return carry, nil
}

// seedBase resolves the base budget to seed a new period with: the most
// recent prior period's base, or the configured default when the
// category has no periods at all yet.
func (e *Engine) seedBase(category models.Category, month types.Month) (decimal.Decimal, error) {
	previous, err := e.periods.MostRecentOnOrBefore(category.ID, month)
	if err != nil {
		return decimal.Zero, err
	}

	if previous != nil {
		return previous.BaseBudget, nil
	}

	return e.DefaultBase(category.Name), nil
}

// Summary computes the budget summary of the category for the month
// that now falls into.
func (e *Engine) Summary(category models.Category, now time.Time) (Summary, error) {
	current := types.MonthOf(now)
	next := current.AddDate(0, 1)

	seed, err := e.seedBase(category, current)
	if err != nil {
		return Summary{}, err
	}

	period, err := e.periods.GetOrCreate(category.ID, current, seed)
	if err != nil {
		return Summary{}, err
	}

	carryIn, err := e.CumulativeCarry(category, current)
	if err != nil {
		return Summary{}, err
	}

	// Floor at zero so a category never shows a negative allowance,
	// no matter how long the deficit streak is.
	effective := decimal.Max(decimal.Zero, period.BaseBudget.Add(carryIn))

	spent, err := e.ledger.SumSpent(category.ID, time.Time(current), time.Time(next))
	if err != nil {
		return Summary{}, err
	}

	remaining := effective.Sub(spent)

	// Guard the percentage against division by zero.
	pct := 0.0
	if effective.IsPositive() {
		pct, _ = spent.Div(effective).Mul(decimal.NewFromInt(100)).Float64()
	}

	return Summary{
		Base:      period.BaseBudget,
		CarryIn:   carryIn,
		Effective: effective,
		Spent:     spent,
		Remaining: remaining,
		Pct:       pct,
		OverBy:    decimal.Max(decimal.Zero, remaining.Neg()),
	}, nil
}

// YTDRow is the year-to-date spend of one category.
type YTDRow struct {
	Category models.Category `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
}

// YTDTotals sums the purchases of each category from January 1st of
// now's year through now. Rows keep the order of the passed categories;
// the overall sum is invariant to it.
func (e *Engine) YTDTotals(categories []models.Category, now time.Time) ([]YTDRow, decimal.Decimal, error) {
	startOfYear := time.Date(now.UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]YTDRow, 0, len(categories))
	overall := decimal.Zero
	for _, category := range categories {
		spent, err := e.ledger.SumSpent(category.ID, startOfYear, now)
		if err != nil {
			return nil, decimal.Zero, err
		}

		rows = append(rows, YTDRow{Category: category, Spent: spent})
		overall = overall.Add(spent)
	}

	return rows, overall, nil
}

// Progress describes how far the current month has elapsed.
type Progress struct {
	Pct      float64   `json:"pct"`      // Percentage of the month that has passed
	DaysLeft int       `json:"daysLeft"` // Whole days remaining in the month
	Start    time.Time `json:"start"`    // First instant of the month
	End      time.Time `json:"end"`      // First instant of the next month
}

// MonthProgress computes the progress of the month that now falls into.
func MonthProgress(now time.Time) Progress {
	current := types.MonthOf(now)
	next := current.AddDate(0, 1)

	start := time.Time(current)
	end := time.Time(next)

	total := end.Sub(start).Seconds()
	elapsed := now.UTC().Sub(start).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}

	pct := 0.0
	if total > 0 {
		pct = elapsed / total * 100
	}

	daysLeft := int(end.Sub(now.UTC()).Hours() / 24)
	if daysLeft < 0 {
		daysLeft = 0
	}

	return Progress{
		Pct:      pct,
		DaysLeft: daysLeft,
		Start:    start,
		End:      end,
	}
}
