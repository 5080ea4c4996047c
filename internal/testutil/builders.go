package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
)

// TransactionBuilder builds transactions with a fluent API.
type TransactionBuilder struct {
	txn model.Transaction
}

// Income starts an income transaction of amount (a decimal string) in category.
func Income(category model.Category, amount string) *TransactionBuilder {
	return newTransaction(category, amount, model.TransactionTypeIncome)
}

// Expense starts an expense transaction of amount (a decimal string) in category.
func Expense(category model.Category, amount string) *TransactionBuilder {
	return newTransaction(category, amount, model.TransactionTypeExpense)
}

func newTransaction(category model.Category, amount string, t model.TransactionType) *TransactionBuilder {
	return &TransactionBuilder{txn: model.Transaction{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: category.Name + " " + string(t),
		Type:        t,
	}}
}

// On dates the transaction at noon local time on the given day.
func (b *TransactionBuilder) On(year int, month time.Month, day int) *TransactionBuilder {
	b.txn.Date = time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	return b
}

// At dates the transaction at an exact instant.
func (b *TransactionBuilder) At(t time.Time) *TransactionBuilder {
	b.txn.Date = t
	return b
}

// WithID sets the transaction id.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.txn.ID = id
	return b
}

// Described sets the description.
func (b *TransactionBuilder) Described(description string) *TransactionBuilder {
	b.txn.Description = description
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.txn
}

// Category returns the seeded default category with the given name, or panics.
func Category(name string) model.Category {
	cat, ok := ledger.DefaultCategory(name)
	if !ok {
		panic("unknown default category " + name)
	}
	return cat
}

// Budgeted returns category with a monthly cap of amount (a decimal string).
func Budgeted(category model.Category, amount string) model.Category {
	budget := decimal.RequireFromString(amount)
	return category.WithBudget(&budget)
}
