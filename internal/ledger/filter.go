package ledger

import (
	"sort"
	"strings"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// Filter narrows a transaction list for display. Zero values match everything.
type Filter struct {
	Type   model.TransactionType
	Search string // Case-insensitive match on description or category name
}

// Match reports whether txn passes the filter.
func (f Filter) Match(txn model.Transaction) bool {
	if f.Type != "" && txn.Type != f.Type {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(txn.Description), search) ||
		strings.Contains(strings.ToLower(txn.Category.Name), search)
}

// FilterTransactions returns the transactions that pass f, preserving order.
func FilterTransactions(txns []model.Transaction, f Filter) []model.Transaction {
	matched := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if f.Match(txn) {
			matched = append(matched, txn)
		}
	}
	return matched
}

// SortByDateDesc returns a copy of txns ordered newest first. Ties keep insertion order.
func SortByDateDesc(txns []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// Recent returns up to n of the newest transactions.
func Recent(txns []model.Transaction, n int) []model.Transaction {
	sorted := SortByDateDesc(txns)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
