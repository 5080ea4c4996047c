package ledger

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
)

// DefaultColor is used when a category is created without a color.
const DefaultColor = "#607D8B"

// ErrInvalidCategory is returned when a category fails validation.
var ErrInvalidCategory = errors.New("invalid category")

var hexColorRegex = regexp.MustCompile(`^#?([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// CategoryStore owns the persisted category list.
type CategoryStore struct {
	kv service.KeyValueStore
}

// NewCategoryStore creates a category store over kv.
func NewCategoryStore(kv service.KeyValueStore) *CategoryStore {
	return &CategoryStore{kv: kv}
}

// List returns all categories. When nothing is persisted, or the persisted blob is
// unreadable, the seeded defaults are returned without being written back.
func (s *CategoryStore) List(ctx context.Context) ([]model.Category, error) {
	categories, found, err := readList[model.Category](ctx, s.kv, service.KeyCategories)
	if errors.Is(err, ErrCorruptData) {
		common.LogWarn(err, "Error loading categories, using defaults", nil)
		return DefaultCategories(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if !found {
		return DefaultCategories(), nil
	}
	return categories, nil
}

// Get returns the category with the given id.
func (s *CategoryStore) Get(ctx context.Context, id string) (model.Category, bool, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return model.Category{}, false, err
	}
	if i := indexOfCategory(categories, id); i >= 0 {
		return categories[i], true, nil
	}
	return model.Category{}, false, nil
}

// FindByName returns the first category whose name matches case-insensitively.
func (s *CategoryStore) FindByName(ctx context.Context, name string) (model.Category, bool, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return model.Category{}, false, err
	}
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, strings.TrimSpace(name)) {
			return cat, true, nil
		}
	}
	return model.Category{}, false, nil
}

// Add appends a category, assigning an id when none is set.
func (s *CategoryStore) Add(ctx context.Context, category model.Category) (model.Category, error) {
	category = normalizeCategory(category)
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if err := validateCategory(category); err != nil {
		return model.Category{}, err
	}

	categories, err := s.List(ctx)
	if err != nil {
		return model.Category{}, err
	}
	categories = append(categories, category)

	if err := s.save(ctx, categories); err != nil {
		return model.Category{}, err
	}

	common.LogDebug("added category", common.Fields{"id": category.ID, "name": category.Name})
	return category, nil
}

// Update replaces the category with the same id. Unknown ids are ignored.
func (s *CategoryStore) Update(ctx context.Context, category model.Category) error {
	category = normalizeCategory(category)
	if err := validateCategory(category); err != nil {
		return err
	}

	categories, err := s.List(ctx)
	if err != nil {
		return err
	}

	i := indexOfCategory(categories, category.ID)
	if i < 0 {
		common.LogDebug("category not found for update", common.Fields{"id": category.ID})
		return nil
	}
	categories[i] = category

	return s.save(ctx, categories)
}

// SetBudget sets or clears (nil) the monthly cap of a category.
func (s *CategoryStore) SetBudget(ctx context.Context, id string, budget *decimal.Decimal) (model.Category, error) {
	if budget != nil && budget.IsNegative() {
		return model.Category{}, fmt.Errorf("%w: budget cannot be negative", ErrInvalidCategory)
	}

	categories, err := s.List(ctx)
	if err != nil {
		return model.Category{}, err
	}

	i := indexOfCategory(categories, id)
	if i < 0 {
		return model.Category{}, fmt.Errorf("category %s: %w", id, common.ErrNotFound)
	}
	categories[i] = categories[i].WithBudget(budget)

	if err := s.save(ctx, categories); err != nil {
		return model.Category{}, err
	}
	return categories[i], nil
}

// Delete removes the category with the given id. Unknown ids are ignored.
func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	categories, err := s.List(ctx)
	if err != nil {
		return err
	}

	i := indexOfCategory(categories, id)
	if i < 0 {
		common.LogDebug("category not found for delete", common.Fields{"id": id})
		return nil
	}
	categories = append(categories[:i], categories[i+1:]...)

	return s.save(ctx, categories)
}

// Clear resets the persisted list to the seeded defaults.
func (s *CategoryStore) Clear(ctx context.Context) error {
	return s.save(ctx, DefaultCategories())
}

func (s *CategoryStore) save(ctx context.Context, categories []model.Category) error {
	if err := writeList(ctx, s.kv, service.KeyCategories, categories); err != nil {
		common.LogError(err, "Error saving categories", common.Fields{"count": len(categories)})
		return err
	}
	return nil
}

func indexOfCategory(categories []model.Category, id string) int {
	for i, cat := range categories {
		if cat.ID == id {
			return i
		}
	}
	return -1
}

func normalizeCategory(category model.Category) model.Category {
	category.Name = strings.TrimSpace(category.Name)
	category.Icon = strings.TrimSpace(category.Icon)
	category.Color = strings.TrimSpace(category.Color)
	if category.Color == "" {
		category.Color = DefaultColor
	}
	if category.Color[0] != '#' {
		category.Color = "#" + category.Color
	}
	category.Color = strings.ToUpper(category.Color)
	return category
}

func validateCategory(category model.Category) error {
	if category.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if category.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	if category.Icon == "" {
		return fmt.Errorf("%w: missing icon", ErrInvalidCategory)
	}
	if !hexColorRegex.MatchString(category.Color) {
		return fmt.Errorf("%w: color %q is not a hex RGB value", ErrInvalidCategory, category.Color)
	}
	if category.Budget != nil && category.Budget.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidCategory)
	}
	return nil
}
