package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/advisor"
	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
)

const recentLimit = 5

func dashboardCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "home"},
		Short:   "Show balance, monthly totals, recent activity and budget alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ref, err := referenceMonth(month)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, err := a.book.Transactions.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			categories, err := a.book.Categories.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}
			values, err := a.settings.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			a.println(cli.FormatTitle(fmt.Sprintf("%s Hello, %s", cli.BeeIcon, greetingName(ctx, a))))

			summary := ledger.Summarize(txns, ref)
			a.println(renderSummary(summary, values.CurrencySymbol))

			a.println(cli.SubtitleStyle.Render("Recent transactions"))
			recent := ledger.Recent(txns, recentLimit)
			if len(recent) == 0 {
				a.println(cli.SubtleStyle.Render("No transactions yet. Use 'buzz transactions add' to record one."))
			} else {
				writeTransactionTable(a, recent, values.CurrencySymbol)
			}

			if values.NotificationsEnabled {
				alerts := ledger.Alerts(ledger.Statuses(categories, txns, ref), float64(values.BudgetWarningThreshold))
				if len(alerts) > 0 {
					a.println("")
					a.println(cli.SubtitleStyle.Render("Budget alerts"))
					for _, alert := range alerts {
						a.println(formatAlert(alert, values.CurrencySymbol))
					}
				}
			}

			a.println("")
			a.println(renderGoals(advisor.SampleProfile(clock()), values.CurrencySymbol))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month as YYYY-MM (default: current month)")
	return cmd
}

// greetingName is the signed-in user's name, or the sample profile's when nobody is signed in.
func greetingName(ctx context.Context, a *app) string {
	manager, err := newAuthManager(ctx, a)
	if err != nil {
		slog.Warn("Failed to restore session", "error", err)
		return advisor.SampleUserName
	}
	if user, ok := manager.Current(); ok && user.FullName != "" {
		return user.FullName
	}
	return advisor.SampleUserName
}

func renderSummary(s ledger.Summary, symbol string) string {
	net := s.Net()
	netStyle := cli.SuccessStyle
	if net.IsNegative() {
		netStyle = cli.ErrorStyle
	}

	content := fmt.Sprintf("Balance:  %s\nIncome:   %s\nExpenses: %s\nNet:      %s",
		cli.BoldStyle.Render(cli.FormatCurrency(s.Balance, symbol)),
		cli.TypeStyle(model.TransactionTypeIncome).Render(cli.FormatCurrency(s.Income, symbol)),
		cli.TypeStyle(model.TransactionTypeExpense).Render(cli.FormatCurrency(s.Expense, symbol)),
		netStyle.Render(cli.FormatCurrency(net, symbol)))
	return cli.RenderBox(cli.ChartIcon+" "+cli.FormatMonth(s.Month), content)
}

func formatAlert(s ledger.BudgetStatus, symbol string) string {
	msg := fmt.Sprintf("%s has used %s of its %s budget (%s left)",
		s.Category.Name,
		cli.FormatPercent(s.Percentage),
		cli.FormatCurrency(*s.Budget, symbol),
		cli.FormatCurrency(*s.Remaining, symbol))
	if s.Tier == ledger.TierOver {
		return cli.FormatError(msg)
	}
	return cli.FormatWarning(msg)
}

func renderGoals(profile model.FinancialProfile, symbol string) string {
	lines := make([]string, 0, len(profile.Goals))
	for _, goal := range profile.Goals {
		lines = append(lines, fmt.Sprintf("%-14s %s by %s  %s",
			goal.Name,
			cli.FormatCurrency(goal.TargetAmount, symbol),
			cli.FormatDate(goal.TargetDate),
			progressBar(goal.Progress, 20)))
	}
	return cli.RenderBox("Financial goals", strings.Join(lines, "\n"))
}

// progressBar draws a fixed-width bar for a fraction in [0,1].
func progressBar(fraction float64, width int) string {
	fraction = max(0, min(1, fraction))
	filled := int(fraction*float64(width) + 0.5)
	return fmt.Sprintf("[%s%s] %s",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		cli.FormatPercent(fraction*100))
}
