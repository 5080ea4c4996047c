package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// Summary is the headline figures for one reference month.
type Summary struct {
	Month   time.Time       // First instant of the reference month
	Balance decimal.Decimal // All-time income minus expenses
	Income  decimal.Decimal // Income within the month
	Expense decimal.Decimal // Expenses within the month
}

// Net is the month's income minus its expenses.
func (s Summary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// TotalBalance sums income minus expenses over all transactions.
// Transfers are ignored.
func TotalBalance(txns []model.Transaction) decimal.Decimal {
	return sumByType(txns, model.TransactionTypeIncome).Sub(sumByType(txns, model.TransactionTypeExpense))
}

// InMonth reports whether date falls in the calendar month of ref, evaluated in ref's location.
func InMonth(date, ref time.Time) bool {
	y, m, _ := date.In(ref.Location()).Date()
	ry, rm, _ := ref.Date()
	return y == ry && m == rm
}

// MonthStart returns the first instant of ref's month in ref's location.
func MonthStart(ref time.Time) time.Time {
	y, m, _ := ref.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
}

// MonthlyIncome sums income transactions dated in ref's month.
func MonthlyIncome(txns []model.Transaction, ref time.Time) decimal.Decimal {
	return sumByType(inMonth(txns, ref), model.TransactionTypeIncome)
}

// MonthlyExpense sums expense transactions dated in ref's month.
func MonthlyExpense(txns []model.Transaction, ref time.Time) decimal.Decimal {
	return sumByType(inMonth(txns, ref), model.TransactionTypeExpense)
}

// CategorySpent sums the month's expenses recorded against category.
func CategorySpent(txns []model.Transaction, category model.Category, ref time.Time) decimal.Decimal {
	spent := decimal.Zero
	for _, txn := range txns {
		if txn.Type == model.TransactionTypeExpense &&
			txn.Category.ID == category.ID &&
			InMonth(txn.Date, ref) {
			spent = spent.Add(txn.Amount.Abs())
		}
	}
	return spent
}

// Summarize computes the dashboard figures for ref's month.
func Summarize(txns []model.Transaction, ref time.Time) Summary {
	return Summary{
		Month:   MonthStart(ref),
		Balance: TotalBalance(txns),
		Income:  MonthlyIncome(txns, ref),
		Expense: MonthlyExpense(txns, ref),
	}
}

// sumByType adds absolute amounts so that pre-signed legacy entries aggregate
// the same as unsigned ones.
func sumByType(txns []model.Transaction, t model.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type == t {
			total = total.Add(txn.Amount.Abs())
		}
	}
	return total
}

func inMonth(txns []model.Transaction, ref time.Time) []model.Transaction {
	matched := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if InMonth(txn.Date, ref) {
			matched = append(matched, txn)
		}
	}
	return matched
}
