package advisor

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// SampleUserName is the name shown on the dashboard when no one is signed in.
const SampleUserName = "John Doe"

// SampleProfile returns the static profile shown on the dashboard. Goal target
// dates are relative to now.
func SampleProfile(now time.Time) model.FinancialProfile {
	return model.FinancialProfile{
		ID:              uuid.NewString(),
		CurrentIncome:   decimal.NewFromInt(7500),
		CurrentSavings:  decimal.NewFromInt(50000),
		MonthlyExpenses: decimal.NewFromInt(4500),
		NetWorth:        decimal.NewFromInt(50000),
		RiskTolerance:   model.RiskModerate,
		InvestmentPreferences: []model.InvestmentType{
			model.InvestmentStocks,
			model.InvestmentMutualFunds,
		},
		Goals: []model.FinancialGoal{
			{
				ID:           uuid.NewString(),
				Name:         "Emergency Fund",
				TargetAmount: decimal.NewFromInt(30000),
				TargetDate:   now.AddDate(1, 0, 0),
				Priority:     model.GoalPriorityHigh,
				Progress:     0.5,
			},
			{
				ID:           uuid.NewString(),
				Name:         "New Car",
				TargetAmount: decimal.NewFromInt(25000),
				TargetDate:   now.AddDate(2, 0, 0),
				Priority:     model.GoalPriorityMedium,
				Progress:     0.2,
			},
		},
	}
}
