// Package testutil provides test utilities for budget-buzz: isolated stores and
// fluent builders for ledger data.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
	"github.com/Veraticus/budget-buzz/internal/storage"
)

// TestLedger is an isolated key-value store with both ledger stores on top.
type TestLedger struct {
	KV   service.KeyValueStore
	Book *ledger.Book
	t    *testing.T
}

// SetupTestLedger creates a ledger over a fresh in-memory store.
//
// Example:
//
//	l := testutil.SetupTestLedger(t)
//	food := l.MustCategory("Food")
//	l.MustAdd(testutil.Expense(food, "40").On(2024, time.June, 20).Build())
func SetupTestLedger(t *testing.T, opts ...ledger.Option) *TestLedger {
	t.Helper()

	kv := storage.NewMemoryStorage()
	t.Cleanup(func() {
		_ = kv.Close()
	})

	return &TestLedger{
		KV:   kv,
		Book: ledger.NewBook(kv, opts...),
		t:    t,
	}
}

// SetupSQLiteLedger creates a ledger backed by a migrated SQLite file in t.TempDir().
func SetupSQLiteLedger(t *testing.T, opts ...ledger.Option) *TestLedger {
	t.Helper()

	kv, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "buzz.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := kv.Migrate(context.Background()); err != nil {
		_ = kv.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		_ = kv.Close()
	})

	return &TestLedger{
		KV:   kv,
		Book: ledger.NewBook(kv, opts...),
		t:    t,
	}
}

// MustCategory returns the category with the given name or fails the test.
func (l *TestLedger) MustCategory(name string) model.Category {
	l.t.Helper()
	cat, ok, err := l.Book.Categories.FindByName(context.Background(), name)
	if err != nil {
		l.t.Fatalf("failed to look up category %q: %v", name, err)
	}
	if !ok {
		l.t.Fatalf("category %q not found", name)
	}
	return cat
}

// MustAdd records txn or fails the test.
func (l *TestLedger) MustAdd(txn model.Transaction) model.Transaction {
	l.t.Helper()
	added, err := l.Book.Transactions.Add(context.Background(), txn)
	if err != nil {
		l.t.Fatalf("failed to add transaction: %v", err)
	}
	return added
}

// MustList returns every stored transaction or fails the test.
func (l *TestLedger) MustList() []model.Transaction {
	l.t.Helper()
	txns, err := l.Book.Transactions.List(context.Background())
	if err != nil {
		l.t.Fatalf("failed to list transactions: %v", err)
	}
	return txns
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
