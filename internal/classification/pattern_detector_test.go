package classification

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
)

func txn(description string, t model.TransactionType) model.Transaction {
	return model.Transaction{Description: description, Type: t, Amount: decimal.NewFromInt(10)}
}

func TestNewPatternDetector(t *testing.T) {
	tests := []struct {
		name      string
		errMsg    string
		patterns  []Pattern
		wantCount int
		wantErr   bool
	}{
		{name: "defaults", patterns: DefaultPatterns(), wantCount: len(DefaultPatterns())},
		{name: "empty patterns", patterns: []Pattern{}},
		{
			name:     "invalid regex",
			patterns: []Pattern{{Name: "Bad Pattern", Regex: `[invalid regex`}},
			wantErr:  true,
			errMsg:   "failed to compile pattern Bad Pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pd, err := NewPatternDetector(tt.patterns)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, pd.PatternCount())
		})
	}
}

func TestDefaultPatterns_Classify(t *testing.T) {
	pd, err := NewPatternDetector(DefaultPatterns())
	require.NoError(t, err)

	tests := []struct {
		txn  model.Transaction
		name string
		want string
	}{
		{name: "payroll", txn: txn("ACME CORP PAYROLL", model.TransactionTypeIncome), want: "Salary"},
		{name: "payroll as expense does not match salary", txn: txn("PAYROLL ADJUSTMENT", model.TransactionTypeExpense)},
		{name: "uber eats beats uber", txn: txn("UBER EATS 8005928996", model.TransactionTypeExpense), want: "Food"},
		{name: "uber ride", txn: txn("UBER TRIP HELP.UBER.COM", model.TransactionTypeExpense), want: "Transportation"},
		{name: "streaming", txn: txn("NETFLIX.COM", model.TransactionTypeExpense), want: "Entertainment"},
		{name: "amazon with suffix", txn: txn("AMAZON.COM*RT4Y7HG2", model.TransactionTypeExpense), want: "Shopping"},
		{name: "case insensitive", txn: txn("Whole Foods Market", model.TransactionTypeExpense), want: "Food"},
		{name: "rent", txn: txn("Monthly rent June", model.TransactionTypeExpense), want: "Rent"},
		{name: "pharmacy", txn: txn("CVS/PHARMACY #1234", model.TransactionTypeExpense), want: "Healthcare"},
		{name: "unknown", txn: txn("ZZZ HOLDINGS", model.TransactionTypeExpense)},
		{name: "transfers never match", txn: txn("NETFLIX.COM", model.TransactionTypeTransfer)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := pd.Classify(context.Background(), tt.txn)
			if tt.want == "" {
				assert.Nil(t, match)
				return
			}
			require.NotNil(t, match)
			assert.Equal(t, tt.want, match.Category)
			assert.InDelta(t, 0.5, match.Confidence, 0.5)
		})
	}
}

func TestPatternDetector_PriorityOrder(t *testing.T) {
	pd, err := NewPatternDetector([]Pattern{
		{Name: "low", Category: "Other", Regex: `COFFEE`, Type: model.TransactionTypeExpense, Priority: 1},
		{Name: "high", Category: "Food", Regex: `COFFEE`, Type: model.TransactionTypeExpense, Priority: 10},
	})
	require.NoError(t, err)

	match := pd.Classify(context.Background(), txn("Coffee bar", model.TransactionTypeExpense))
	require.NotNil(t, match)
	assert.Equal(t, "high", match.PatternName)

	require.NoError(t, pd.UpdatePatterns(nil))
	assert.Nil(t, pd.Classify(context.Background(), txn("Coffee bar", model.TransactionTypeExpense)))
}

func TestPatternDetector_Suggest(t *testing.T) {
	pd, err := NewPatternDetector(DefaultPatterns())
	require.NoError(t, err)
	ctx := context.Background()
	categories := ledger.DefaultCategories()

	cat, ok := pd.Suggest(ctx, txn("NETFLIX.COM", model.TransactionTypeExpense), categories)
	require.True(t, ok)
	assert.Equal(t, "Entertainment", cat.Name)

	_, ok = pd.Suggest(ctx, txn("ZZZ HOLDINGS", model.TransactionTypeExpense), categories)
	assert.False(t, ok)

	withoutEntertainment := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.Name != "Entertainment" {
			withoutEntertainment = append(withoutEntertainment, c)
		}
	}
	_, ok = pd.Suggest(ctx, txn("NETFLIX.COM", model.TransactionTypeExpense), withoutEntertainment)
	assert.False(t, ok, "deleted categories are never suggested")
}
