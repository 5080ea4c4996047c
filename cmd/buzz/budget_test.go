package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetCommand(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "budget")
	assert.Contains(t, out, "No budgets set")

	mustRun(t, "categories", "budget", "Food", "50")
	mustRun(t, "categories", "budget", "Rent", "1000")
	mustRun(t, "transactions", "add", "-a", "40", "-d", "Groceries", "-c", "Food")
	mustRun(t, "transactions", "add", "-a", "100", "-d", "May groceries", "-c", "Food", "--date", "2024-05-20")

	out = mustRun(t, "budget")
	assert.Contains(t, out, "Budget for June 2024")
	assert.Contains(t, out, "₹1,050.00")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "Rent")

	out = mustRun(t, "budget", "--month", "2024-05")
	assert.Contains(t, out, "Budget for May 2024")
	assert.Contains(t, out, "200%")
	assert.Contains(t, out, "Over")

	_, err := runBuzz(t, "", "budget", "--month", "June")
	assert.Error(t, err)
}

func TestDashboardCommand(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "dashboard")
	assert.Contains(t, out, "Hello, John Doe")
	assert.Contains(t, out, "No transactions yet")
	assert.Contains(t, out, "Emergency Fund")
	assert.Contains(t, out, "New Car")

	mustRun(t, "categories", "budget", "Food", "50")
	mustRun(t, "transactions", "add", "-a", "100", "-d", "Paycheck", "-c", "Salary", "-t", "income")
	mustRun(t, "transactions", "add", "-a", "45", "-d", "Groceries", "-c", "Food")

	out = mustRun(t, "dashboard")
	assert.Contains(t, out, "June 2024")
	assert.Contains(t, out, "₹55.00")
	assert.Contains(t, out, "Paycheck")
	assert.Contains(t, out, "Budget alerts")
	assert.Contains(t, out, "Food has used 90%")

	mustRun(t, "settings", "set", "budgetWarningThreshold", "95")
	out = mustRun(t, "dashboard")
	assert.NotContains(t, out, "Budget alerts")

	mustRun(t, "settings", "set", "budgetWarningThreshold", "50")
	mustRun(t, "settings", "set", "notificationsEnabled", "false")
	out = mustRun(t, "dashboard")
	assert.NotContains(t, out, "Budget alerts")

	mustRun(t, "auth", "signup", "--name", "Ada Lovelace", "--email", "ada@example.com", "--password", "Engine123", "--confirm", "Engine123")
	out = mustRun(t, "dashboard")
	assert.Contains(t, out, "Hello, Ada Lovelace")
}

func TestRecommendCommand(t *testing.T) {
	setupCLI(t)

	out := mustRun(t, "recommend")
	assert.Contains(t, out, "Optimize Savings")
	assert.Contains(t, out, "Investment Opportunity")
	assert.Contains(t, out, "Debt Management")
}
