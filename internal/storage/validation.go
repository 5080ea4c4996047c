// Package storage provides the key-value persistence layer for budget-buzz.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Argument errors shared by every KeyValueStore implementation.
var (
	ErrNilContext = errors.New("context cannot be nil")
	ErrInvalidKey = errors.New("invalid storage key")
	ErrNilValue   = errors.New("value cannot be nil; store an empty JSON document instead")
	ErrEmptyPath  = errors.New("database path cannot be empty")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateKey checks a key such as "transactions" or "budgetWarningThreshold".
// Keys are stored verbatim, so padded or control-character keys are rejected
// rather than silently creating a second entry.
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.TrimSpace(key) != key {
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidKey, key)
	}
	if strings.IndexFunc(key, unicode.IsControl) >= 0 {
		return fmt.Errorf("%w: %q contains control characters", ErrInvalidKey, key)
	}
	return nil
}

// validateWrite checks the arguments of a Set call.
func validateWrite(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("%w: key %q", ErrNilValue, key)
	}
	return nil
}

// validateRead checks the arguments of a Get call.
func validateRead(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	return validateKey(key)
}

// validateDelete checks the arguments of a Delete call.
func validateDelete(ctx context.Context, keys []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for _, key := range keys {
		if err := validateKey(key); err != nil {
			return err
		}
	}
	return nil
}
