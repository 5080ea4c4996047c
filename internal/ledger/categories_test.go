package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
	"github.com/Veraticus/budget-buzz/internal/testutil"
)

func categoryNames(categories []model.Category) []string {
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	return names
}

func TestCategoryStore_ListSeedsDefaults(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	categories, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Salary", "Rent", "Utilities", "Food", "Transportation",
		"Entertainment", "Shopping", "Healthcare", "Education", "Other",
	}, categoryNames(categories))

	// Seeding is identical every time and is not persisted by a read.
	again, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, again)

	_, found, err := l.KV.Get(ctx, service.KeyCategories)
	require.NoError(t, err)
	assert.False(t, found, "reading defaults must not persist them")
}

func TestCategoryStore_AddPersistsDefaultsPlusNew(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	added, err := l.Book.Categories.Add(ctx, model.Category{Name: "Pets", Icon: "pawprint", Color: "ff5722"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "#FF5722", added.Color)

	categories, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 11)
	assert.Equal(t, added, categories[10])
}

func TestCategoryStore_AddValidates(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	tests := []struct {
		name     string
		category model.Category
	}{
		{name: "missing name", category: model.Category{Icon: "cart"}},
		{name: "missing icon", category: model.Category{Name: "Pets"}},
		{name: "bad color", category: model.Category{Name: "Pets", Icon: "cart", Color: "blue"}},
		{name: "negative budget", category: model.Category{Name: "Pets", Icon: "cart", Budget: &negative}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testutil.SetupTestLedger(t)
			_, err := l.Book.Categories.Add(context.Background(), tt.category)
			assert.True(t, errors.Is(err, ledger.ErrInvalidCategory), "got %v", err)
		})
	}
}

func TestCategoryStore_AddColors(t *testing.T) {
	tests := []struct {
		color string
		want  string
		valid bool
	}{
		{color: "#ff5722", want: "#FF5722", valid: true},
		{color: "FF5722", want: "#FF5722", valid: true},
		{color: " #4caf50 ", want: "#4CAF50", valid: true},
		{color: "#FF572280", want: "#FF572280", valid: true},
		{color: "", want: ledger.DefaultColor, valid: true},
		{color: "#12345"},
		{color: "#1234567"},
		{color: "#GGGGGG"},
		{color: "blue"},
		{color: "##FF5722"},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			l := testutil.SetupTestLedger(t)
			added, err := l.Book.Categories.Add(context.Background(), model.Category{Name: "Pets", Icon: "pawprint", Color: tt.color})
			if !tt.valid {
				assert.ErrorIs(t, err, ledger.ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, added.Color)
		})
	}
}

func TestCategoryStore_UpdateByID(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	food := l.MustCategory("Food")
	food.Name = "Groceries"
	food.Color = "#00FF00"
	require.NoError(t, l.Book.Categories.Update(ctx, food))

	got, ok, err := l.Book.Categories.Get(ctx, food.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Groceries", got.Name)
	assert.Equal(t, "#00FF00", got.Color)
}

func TestCategoryStore_UpdateUnknownIsNoop(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	err := l.Book.Categories.Update(ctx, model.Category{ID: "missing", Name: "Ghost", Icon: "eye"})
	require.NoError(t, err)

	_, found, err := l.KV.Get(ctx, service.KeyCategories)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCategoryStore_Delete(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	other := l.MustCategory("Other")
	require.NoError(t, l.Book.Categories.Delete(ctx, other.ID))
	require.NoError(t, l.Book.Categories.Delete(ctx, "missing"))

	categories, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 9)
	assert.NotContains(t, categoryNames(categories), "Other")
}

func TestCategoryStore_SetBudget(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()
	food := l.MustCategory("Food")

	budget := decimal.NewFromInt(50)
	updated, err := l.Book.Categories.SetBudget(ctx, food.ID, &budget)
	require.NoError(t, err)
	require.NotNil(t, updated.Budget)
	assert.True(t, updated.Budget.Equal(budget))

	cleared, err := l.Book.Categories.SetBudget(ctx, food.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.Budget)

	_, err = l.Book.Categories.SetBudget(ctx, "missing", &budget)
	assert.ErrorIs(t, err, common.ErrNotFound)

	negative := decimal.NewFromInt(-5)
	_, err = l.Book.Categories.SetBudget(ctx, food.ID, &negative)
	assert.ErrorIs(t, err, ledger.ErrInvalidCategory)
}

func TestCategoryStore_CorruptBlobFallsBackToDefaults(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.KV.Set(ctx, service.KeyCategories, []byte("{not json")))

	categories, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultCategories(), categories)
}

func TestCategoryStore_PersistedEmptyListStaysEmpty(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.KV.Set(ctx, service.KeyCategories, []byte("[]")))

	categories, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryStore_Clear(t *testing.T) {
	l := testutil.SetupTestLedger(t)
	ctx := context.Background()

	_, err := l.Book.Categories.Add(ctx, model.Category{Name: "Pets", Icon: "pawprint"})
	require.NoError(t, err)
	require.NoError(t, l.Book.Categories.Clear(ctx))

	categories, err := l.Book.Categories.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultCategories(), categories)
}

func TestCategoryStore_FindByName(t *testing.T) {
	l := testutil.SetupTestLedger(t)

	cat, ok, err := l.Book.Categories.FindByName(context.Background(), " food ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Food", cat.Name)

	_, ok, err = l.Book.Categories.FindByName(context.Background(), "Travel")
	require.NoError(t, err)
	assert.False(t, ok)
}
