package ledger

import (
	"github.com/google/uuid"

	"github.com/Veraticus/budget-buzz/internal/model"
)

type defaultCategory struct {
	Name  string
	Icon  string
	Color string
}

var defaultCategories = []defaultCategory{
	{Name: "Salary", Icon: "dollarsign.circle", Color: "#4CAF50"},
	{Name: "Rent", Icon: "house", Color: "#2196F3"},
	{Name: "Utilities", Icon: "bolt", Color: "#FFC107"},
	{Name: "Food", Icon: "fork.knife", Color: "#FF9800"},
	{Name: "Transportation", Icon: "car", Color: "#9C27B0"},
	{Name: "Entertainment", Icon: "film", Color: "#E91E63"},
	{Name: "Shopping", Icon: "cart", Color: "#00BCD4"},
	{Name: "Healthcare", Icon: "heart", Color: "#F44336"},
	{Name: "Education", Icon: "book", Color: "#673AB7"},
	{Name: "Other", Icon: "ellipsis", Color: "#607D8B"},
}

// DefaultCategories returns the seeded category set. Ids are derived from the names,
// so every call yields an identical list.
func DefaultCategories() []model.Category {
	categories := make([]model.Category, 0, len(defaultCategories))
	for _, def := range defaultCategories {
		categories = append(categories, model.Category{
			ID:    defaultCategoryID(def.Name),
			Name:  def.Name,
			Icon:  def.Icon,
			Color: def.Color,
		})
	}
	return categories
}

// DefaultCategory returns the seeded category with the given name.
func DefaultCategory(name string) (model.Category, bool) {
	for _, cat := range DefaultCategories() {
		if cat.Name == name {
			return cat, true
		}
	}
	return model.Category{}, false
}

func defaultCategoryID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("budget-buzz:category:"+name)).String()
}
