package model

// RecommendationCategory groups advisory items by topic.
type RecommendationCategory string

// Recommendation categories.
const (
	RecommendationSavings    RecommendationCategory = "Savings"
	RecommendationInvestment RecommendationCategory = "Investment"
	RecommendationDebt       RecommendationCategory = "Debt"
	RecommendationIncome     RecommendationCategory = "Income"
	RecommendationExpenses   RecommendationCategory = "Expenses"
)

// RecommendationPriority ranks advisory items.
type RecommendationPriority string

// Recommendation priorities.
const (
	PriorityHigh   RecommendationPriority = "High"
	PriorityMedium RecommendationPriority = "Medium"
	PriorityLow    RecommendationPriority = "Low"
)

// Recommendation is one advisory item. Recommendations live only in memory.
type Recommendation struct {
	ID          string
	Title       string
	Description string
	Category    RecommendationCategory
	Priority    RecommendationPriority
	Action      string // Suggested action label
}
