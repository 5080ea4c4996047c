// Package ledger holds the transaction and category stores and the pure aggregate
// functions computed from their snapshots.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/budget-buzz/internal/service"
)

// Book bundles the stores that share one key-value backend.
type Book struct {
	Transactions *TransactionStore
	Categories   *CategoryStore
}

// NewBook creates both stores over kv.
func NewBook(kv service.KeyValueStore, opts ...Option) *Book {
	return &Book{
		Transactions: NewTransactionStore(kv, opts...),
		Categories:   NewCategoryStore(kv),
	}
}

// WipeAll removes every transaction and resets categories to the seeded defaults.
func (b *Book) WipeAll(ctx context.Context) error {
	if err := b.Transactions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := b.Categories.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset categories: %w", err)
	}
	slog.Info("Cleared all ledger data")
	return nil
}
