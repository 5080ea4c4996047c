package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction's effect on the balance.
type TransactionType string

const (
	// TransactionTypeIncome adds to the balance.
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense subtracts from the balance.
	TransactionTypeExpense TransactionType = "expense"
	// TransactionTypeTransfer moves money between accounts and is ignored by aggregates.
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionTypes lists every known type in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeExpense,
	TransactionTypeTransfer,
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// ParseTransactionType parses a type name case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction is one recorded money movement.
//
// Amount is always stored as an unsigned magnitude; the sign is derived from Type.
// Category is a snapshot taken when the transaction was recorded, so later edits to
// the category do not change it.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Note        string          `json:"note,omitempty"`
	Type        TransactionType `json:"type"`
}

// SignedAmount returns the amount with the display sign applied:
// negative for expenses, positive otherwise.
func (t Transaction) SignedAmount() decimal.Decimal {
	magnitude := t.Amount.Abs()
	if t.Type == TransactionTypeExpense {
		return magnitude.Neg()
	}
	return magnitude
}
