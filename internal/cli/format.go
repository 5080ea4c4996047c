package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Veraticus/budget-buzz/internal/model"
)

var (
	printer    = message.NewPrinter(language.English)
	titleCaser = cases.Title(language.English)
)

// DateLayout is how transaction dates are shown and parsed.
const DateLayout = "2006-01-02"

// FormatCurrency renders amount with two fraction digits, thousands grouping and
// symbol as prefix. Negative amounts get a leading minus: -₹40.00.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
}

// FormatSignedCurrency renders a transaction amount with + for income and - for
// expenses.
func FormatSignedCurrency(txn model.Transaction, symbol string) string {
	formatted := FormatCurrency(txn.Amount.Abs(), symbol)
	switch txn.Type {
	case model.TransactionTypeIncome:
		return "+" + formatted
	case model.TransactionTypeExpense:
		return "-" + formatted
	default:
		return formatted
	}
}

// FormatPercent renders a percentage with no decimals.
func FormatPercent(p float64) string {
	return printer.Sprintf("%.0f%%", p)
}

// FormatDate renders a transaction date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonth renders a reference month such as "June 2024".
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}

// Title capitalizes a label such as a transaction type or tier.
func Title(s string) string {
	return titleCaser.String(s)
}

// Truncate shortens s to at most n runes, ending with an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}

// ParseAmount parses a user-entered amount. Grouping commas and surrounding
// whitespace are ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}
