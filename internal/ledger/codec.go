package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
)

// ErrCorruptData marks a persisted blob that could not be decoded.
var ErrCorruptData = errors.New("corrupt persisted data")

// EncodeTransactions serializes a transaction list into the persisted format.
func EncodeTransactions(txns []model.Transaction) ([]byte, error) {
	return encodeList(txns)
}

// DecodeTransactions parses a persisted transaction list.
func DecodeTransactions(data []byte) ([]model.Transaction, error) {
	return decodeList[model.Transaction](data)
}

// EncodeCategories serializes a category list into the persisted format.
func EncodeCategories(categories []model.Category) ([]byte, error) {
	return encodeList(categories)
}

// DecodeCategories parses a persisted category list.
func DecodeCategories(data []byte) ([]model.Category, error) {
	return decodeList[model.Category](data)
}

func encodeList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	return data, nil
}

func decodeList[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// readList loads the list stored under key. found is false when nothing is persisted.
// A blob that cannot be decoded yields an error wrapping ErrCorruptData.
func readList[T any](ctx context.Context, kv service.KeyValueStore, key string) (items []T, found bool, err error) {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	items, err = decodeList[T](data)
	if err != nil {
		return nil, true, fmt.Errorf("key %q: %w", key, err)
	}
	return items, true, nil
}

// writeList replaces the whole collection stored under key.
func writeList[T any](ctx context.Context, kv service.KeyValueStore, key string, items []T) error {
	data, err := encodeList(items)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
