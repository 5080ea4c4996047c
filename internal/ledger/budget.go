package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// Tier is the severity of a budget's consumption.
type Tier string

// Budget tiers.
const (
	TierOK      Tier = "ok"
	TierWarning Tier = "warning"
	TierOver    Tier = "over"
)

// Tier boundaries in percent of the budget spent.
const (
	WarningPercent = 70.0
	OverPercent    = 90.0
)

var hundred = decimal.NewFromInt(100)

// TierFor classifies a spent percentage: below 70 is ok, 70 up to 90 is warning,
// 90 and above is over.
func TierFor(percentage float64) Tier {
	switch {
	case percentage < WarningPercent:
		return TierOK
	case percentage < OverPercent:
		return TierWarning
	default:
		return TierOver
	}
}

// BudgetStatus is a category's consumption of its monthly cap.
type BudgetStatus struct {
	Budget     *decimal.Decimal // nil when the category is unbudgeted
	Remaining  *decimal.Decimal // nil when the category is unbudgeted
	Category   model.Category
	Spent      decimal.Decimal
	Tier       Tier
	Percentage float64
}

// Status computes the budget status for a category that has spent the given amount.
func Status(category model.Category, spent decimal.Decimal) BudgetStatus {
	status := BudgetStatus{
		Category: category,
		Spent:    spent,
		Tier:     TierOK,
	}
	if category.Budget == nil {
		return status
	}

	budget := *category.Budget
	remaining := budget.Sub(spent)
	status.Budget = &budget
	status.Remaining = &remaining
	status.Percentage = percentOf(spent, budget)
	status.Tier = TierFor(status.Percentage)
	return status
}

// Statuses returns a status for every budgeted category for ref's month,
// in category order.
func Statuses(categories []model.Category, txns []model.Transaction, ref time.Time) []BudgetStatus {
	var statuses []BudgetStatus
	for _, cat := range categories {
		if !cat.HasBudget() {
			continue
		}
		statuses = append(statuses, Status(cat, CategorySpent(txns, cat, ref)))
	}
	return statuses
}

// BudgetOverview compares the month's total expenses with the sum of all caps.
type BudgetOverview struct {
	Month       time.Time
	TotalBudget decimal.Decimal
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal
	Tier        Tier
	Percentage  float64
}

// Overview computes the overall budget figures for ref's month.
func Overview(categories []model.Category, txns []model.Transaction, ref time.Time) BudgetOverview {
	total := decimal.Zero
	for _, cat := range categories {
		if cat.HasBudget() {
			total = total.Add(*cat.Budget)
		}
	}
	spent := MonthlyExpense(txns, ref)
	pct := percentOf(spent, total)

	return BudgetOverview{
		Month:       MonthStart(ref),
		TotalBudget: total,
		TotalSpent:  spent,
		Remaining:   total.Sub(spent),
		Percentage:  pct,
		Tier:        TierFor(pct),
	}
}

// Alerts returns the statuses whose spent percentage has reached threshold.
func Alerts(statuses []BudgetStatus, threshold float64) []BudgetStatus {
	var alerts []BudgetStatus
	for _, status := range statuses {
		if status.Budget != nil && status.Budget.IsPositive() && status.Percentage >= threshold {
			alerts = append(alerts, status)
		}
	}
	return alerts
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
