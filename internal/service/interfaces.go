// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
)

// Keys of the flat key-value layout. Every collection lives under a single key and
// is overwritten wholesale on each mutation.
const (
	KeyTransactions           = "transactions"
	KeyCategories             = "categories"
	KeyUserEmail              = "userEmail"
	KeyUserID                 = "userId"
	KeyUserFullName           = "userFullName"
	KeyCurrencySymbol         = "currencySymbol"
	KeyNotificationsEnabled   = "notificationsEnabled"
	KeyBudgetWarningThreshold = "budgetWarningThreshold"
)

// KeyValueStore is the persistence contract: a process-wide flat map of byte blobs.
type KeyValueStore interface {
	// Get returns the value stored under key. The boolean is false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)
	Close() error
}
