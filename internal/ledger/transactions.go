package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
)

// ErrInvalidTransaction is returned when a transaction fails validation.
var ErrInvalidTransaction = errors.New("invalid transaction")

// Option configures a TransactionStore.
type Option func(*TransactionStore)

// WithClock overrides the clock used to date transactions recorded without a date.
func WithClock(now func() time.Time) Option {
	return func(s *TransactionStore) {
		s.now = now
	}
}

// TransactionStore owns the persisted transaction list.
type TransactionStore struct {
	kv  service.KeyValueStore
	now func() time.Time
}

// NewTransactionStore creates a transaction store over kv.
func NewTransactionStore(kv service.KeyValueStore, opts ...Option) *TransactionStore {
	s := &TransactionStore{
		kv:  kv,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all transactions in insertion order. An unreadable blob is logged
// and treated as an empty list.
func (s *TransactionStore) List(ctx context.Context) ([]model.Transaction, error) {
	txns, _, err := readList[model.Transaction](ctx, s.kv, service.KeyTransactions)
	if errors.Is(err, ErrCorruptData) {
		common.LogWarn(err, "Error loading transactions, treating as empty", nil)
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	return txns, nil
}

// Add appends a transaction. A missing id or date is filled in; the stored value
// is returned.
func (s *TransactionStore) Add(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	added, err := s.AddMany(ctx, []model.Transaction{txn})
	if err != nil {
		return model.Transaction{}, err
	}
	return added[0], nil
}

// AddMany appends several transactions with a single write. Nothing is stored if
// any of them fails validation.
func (s *TransactionStore) AddMany(ctx context.Context, txns []model.Transaction) ([]model.Transaction, error) {
	if len(txns) == 0 {
		return []model.Transaction{}, nil
	}

	prepared := make([]model.Transaction, 0, len(txns))
	for i, txn := range txns {
		txn = s.prepare(txn)
		if err := validateTransaction(txn); err != nil {
			return nil, fmt.Errorf("transaction at index %d: %w", i, err)
		}
		prepared = append(prepared, txn)
	}

	existing, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, append(existing, prepared...)); err != nil {
		return nil, err
	}

	common.LogDebug("added transactions", common.Fields{"count": len(prepared)})
	return prepared, nil
}

// Delete removes the transaction with the given id. Unknown ids are ignored.
func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	txns, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.ID != id {
			kept = append(kept, txn)
		}
	}
	if len(kept) == len(txns) {
		common.LogDebug("transaction not found for delete", common.Fields{"id": id})
		return nil
	}

	return s.save(ctx, kept)
}

// Clear removes every transaction.
func (s *TransactionStore) Clear(ctx context.Context) error {
	return s.save(ctx, []model.Transaction{})
}

func (s *TransactionStore) save(ctx context.Context, txns []model.Transaction) error {
	if err := writeList(ctx, s.kv, service.KeyTransactions, txns); err != nil {
		common.LogError(err, "Error saving transactions", common.Fields{"count": len(txns)})
		return err
	}
	return nil
}

func (s *TransactionStore) prepare(txn model.Transaction) model.Transaction {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if txn.Date.IsZero() {
		txn.Date = s.now()
	}
	txn.Description = strings.TrimSpace(txn.Description)
	txn.Note = strings.TrimSpace(txn.Note)
	return txn
}

// validateTransaction validates a single transaction.
func validateTransaction(txn model.Transaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Description == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidTransaction)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if txn.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must be an unsigned magnitude", ErrInvalidTransaction)
	}
	if txn.Category.ID == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	return nil
}
