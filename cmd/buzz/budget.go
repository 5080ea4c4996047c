package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/ledger"
)

func budgetCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show budget consumption for a month",
		Long: `Show how much of each category's monthly cap has been spent. Below 70% is
ok, 70% up to 90% is a warning, and 90% or more is over.`,
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

			categories, err := a.book.Categories.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}
			txns, err := a.book.Transactions.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			symbol := a.currencySymbol(ctx)
			overview := ledger.Overview(categories, txns, ref)
			statuses := ledger.Statuses(categories, txns, ref)

			a.println(cli.FormatTitle("Budget for " + cli.FormatMonth(overview.Month)))
			a.println(renderOverview(overview, symbol))

			if len(statuses) == 0 {
				a.println(cli.InfoStyle.Render("No budgets set. Use 'buzz categories budget <category> <amount>' to add one."))
				return nil
			}

			writeBudgetTable(a, statuses, symbol)
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month as YYYY-MM (default: current month)")
	return cmd
}

func renderOverview(o ledger.BudgetOverview, symbol string) string {
	style := cli.TierStyle(o.Tier)
	content := fmt.Sprintf("Total budget: %s\nSpent:        %s\nRemaining:    %s\nUsed:         %s",
		cli.FormatCurrency(o.TotalBudget, symbol),
		cli.FormatCurrency(o.TotalSpent, symbol),
		style.Render(cli.FormatCurrency(o.Remaining, symbol)),
		style.Render(cli.FormatPercent(o.Percentage)))
	return cli.RenderBox(cli.ChartIcon+" Overview", content)
}

func writeBudgetTable(a *app, statuses []ledger.BudgetStatus, symbol string) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Spent"),
		cli.BoldStyle.Render("Budget"),
		cli.BoldStyle.Render("Remaining"),
		cli.BoldStyle.Render("Used"),
		cli.BoldStyle.Render("Status"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 16),
		strings.Repeat("-", 12),
		strings.Repeat("-", 12),
		strings.Repeat("-", 12),
		strings.Repeat("-", 5),
		strings.Repeat("-", 7))

	for _, s := range statuses {
		style := cli.TierStyle(s.Tier)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			cli.CategoryStyle(s.Category).Render(s.Category.Name),
			cli.FormatCurrency(s.Spent, symbol),
			cli.FormatCurrency(*s.Budget, symbol),
			style.Render(cli.FormatCurrency(*s.Remaining, symbol)),
			style.Render(cli.FormatPercent(s.Percentage)),
			style.Render(cli.Title(string(s.Tier))))
	}
	_ = w.Flush()
}
