package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskTolerance describes how much investment risk the user accepts.
type RiskTolerance string

// Risk tolerance levels.
const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// InvestmentType is an asset class the user is interested in.
type InvestmentType string

// Investment types.
const (
	InvestmentStocks      InvestmentType = "stocks"
	InvestmentBonds       InvestmentType = "bonds"
	InvestmentMutualFunds InvestmentType = "mutualFunds"
	InvestmentRealEstate  InvestmentType = "realEstate"
	InvestmentCrypto      InvestmentType = "crypto"
)

// GoalPriority ranks financial goals.
type GoalPriority string

// Goal priorities.
const (
	GoalPriorityHigh   GoalPriority = "high"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityLow    GoalPriority = "low"
)

// FinancialGoal is a savings target. Progress is a fraction in [0,1].
type FinancialGoal struct {
	TargetDate   time.Time
	TargetAmount decimal.Decimal
	ID           string
	Name         string
	Priority     GoalPriority
	Progress     float64
}

// FinancialProfile is the display-only snapshot shown on the dashboard.
// It is never persisted.
type FinancialProfile struct {
	CurrentIncome         decimal.Decimal
	CurrentSavings        decimal.Decimal
	MonthlyExpenses       decimal.Decimal
	NetWorth              decimal.Decimal
	ID                    string
	RiskTolerance         RiskTolerance
	Goals                 []FinancialGoal
	InvestmentPreferences []InvestmentType
}
