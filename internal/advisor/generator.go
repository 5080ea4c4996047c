// Package advisor produces financial recommendations for the dashboard.
package advisor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// DefaultDelay is the simulated analysis time.
const DefaultDelay = time.Second

// Source produces recommendations for a profile.
type Source interface {
	Generate(ctx context.Context, profile model.FinancialProfile) ([]model.Recommendation, error)
}

// Generator returns a fixed set of recommendations after a delay.
// The profile is not consulted.
type Generator struct {
	Delay time.Duration
}

// NewGenerator creates a generator with the default delay.
func NewGenerator() *Generator {
	return &Generator{Delay: DefaultDelay}
}

var _ Source = (*Generator)(nil)

// Generate waits for the configured delay and returns the recommendations, each
// with a fresh id. It returns ctx.Err() if the context ends first.
func (g *Generator) Generate(ctx context.Context, _ model.FinancialProfile) ([]model.Recommendation, error) {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	recs := []model.Recommendation{
		{
			Title:       "Optimize Savings",
			Description: "Based on your current spending patterns, you could save an additional $500 per month by reducing discretionary expenses.",
			Category:    model.RecommendationSavings,
			Priority:    model.PriorityHigh,
			Action:      "Review Expenses",
		},
		{
			Title:       "Investment Opportunity",
			Description: "Consider investing in index funds. Your current cash position suggests you could benefit from long-term investments.",
			Category:    model.RecommendationInvestment,
			Priority:    model.PriorityMedium,
			Action:      "Explore Investments",
		},
		{
			Title:       "Debt Management",
			Description: "Your credit card utilization is high. Consider consolidating your debt for better interest rates.",
			Category:    model.RecommendationDebt,
			Priority:    model.PriorityHigh,
			Action:      "View Options",
		},
	}
	for i := range recs {
		recs[i].ID = uuid.NewString()
	}
	return recs, nil
}
