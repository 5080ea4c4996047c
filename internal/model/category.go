package model

import "github.com/shopspring/decimal"

// Category is a named, colored bucket transactions are assigned to.
// Names are not unique; ID is the only reliable identity.
type Category struct {
	Budget *decimal.Decimal `json:"budget,omitempty"` // Monthly cap; nil means unbudgeted
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Icon   string           `json:"icon"`  // Symbol token, e.g. "fork.knife"
	Color  string           `json:"color"` // Hex RGB, e.g. "#FF9800"
}

// HasBudget reports whether the category carries a monthly cap.
func (c Category) HasBudget() bool {
	return c.Budget != nil
}

// WithBudget returns a copy of the category with the given monthly cap.
// A nil budget clears the cap.
func (c Category) WithBudget(budget *decimal.Decimal) Category {
	if budget == nil {
		c.Budget = nil
		return c
	}
	b := *budget
	c.Budget = &b
	return c
}
