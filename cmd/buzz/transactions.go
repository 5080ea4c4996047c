package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txn", "tx"},
		Short:   "Record and review income and expenses",
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())
	cmd.AddCommand(clearTransactionsCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		txnType string
		search  string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter := ledger.Filter{Search: search}
			if txnType != "" {
				t, err := model.ParseTransactionType(txnType)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("Unknown transaction type %q", txnType), err)
				}
				filter.Type = t
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

			txns = ledger.SortByDateDesc(ledger.FilterTransactions(txns, filter))
			if limit > 0 {
				txns = ledger.Recent(txns, limit)
			}

			if len(txns) == 0 {
				a.println(cli.InfoStyle.Render("No transactions found. Use 'buzz transactions add' to record one."))
				return nil
			}

			writeTransactionTable(a, txns, a.currencySymbol(ctx))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", "", "only show income, expense or transfer")
	cmd.Flags().StringVarP(&search, "search", "s", "", "match description or category name (case-insensitive)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many transactions")

	return cmd
}

func writeTransactionTable(a *app, txns []model.Transaction, symbol string) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Description"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("ID"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 30),
		strings.Repeat("-", 14),
		strings.Repeat("-", 14),
		strings.Repeat("-", 36))

	for _, txn := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cli.FormatDate(txn.Date),
			cli.Truncate(txn.Description, 30),
			cli.CategoryStyle(txn.Category).Render(txn.Category.Name),
			cli.TypeStyle(txn.Type).Render(cli.FormatSignedCurrency(txn, symbol)),
			cli.SubtleStyle.Render(txn.ID))
	}
	_ = w.Flush()
}

func addTransactionCmd() *cobra.Command {
	var (
		amount      string
		description string
		category    string
		txnType     string
		date        string
		note        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income, expense or transfer. Amounts are entered unsigned; the
type decides whether money comes in or goes out.

Examples:
  buzz transactions add --amount 40 --description "Groceries" --category Food
  buzz transactions add -a 7500 -d "June salary" -c Salary -t income --date 2024-06-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			value, err := cli.ParseAmount(amount)
			if err != nil {
				return common.NewUserError(err.Error(), common.ErrValidation)
			}
			t, err := model.ParseTransactionType(txnType)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Unknown transaction type %q", txnType), err)
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cat, err := a.findCategory(ctx, category)
			if err != nil {
				return err
			}

			added, err := a.book.Transactions.Add(ctx, model.Transaction{
				Amount:      value,
				Category:    cat,
				Date:        when,
				Description: description,
				Note:        note,
				Type:        t,
			})
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			a.println(cli.FormatSuccess(fmt.Sprintf("Added %s %q %s (ID: %s)",
				added.Type, added.Description, cli.FormatSignedCurrency(added, a.currencySymbol(ctx)), added.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount, unsigned (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what the money was for (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name or id (required)")
	cmd.Flags().StringVarP(&txnType, "type", "t", string(model.TransactionTypeExpense), "income, expense or transfer")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: now)")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete transactions by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, err := a.book.Transactions.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			known := make(map[string]bool, len(txns))
			for _, txn := range txns {
				known[txn.ID] = true
			}

			for _, id := range args {
				if !known[id] {
					a.println(cli.FormatWarning(fmt.Sprintf("No transaction with ID %s", id)))
					continue
				}
				if err := a.book.Transactions.Delete(ctx, id); err != nil {
					return fmt.Errorf("failed to delete transaction %s: %w", id, err)
				}
				a.println(cli.FormatSuccess("Deleted transaction " + id))
			}
			return nil
		},
	}
}

func clearTransactionsCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			txns, err := a.book.Transactions.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			if len(txns) == 0 {
				a.println("No transactions found. Nothing to clear.")
				return nil
			}

			if !force {
				ok, err := cli.NewCLIPrompter(a.in, a.out).Confirm(ctx, "Delete all "+strconv.Itoa(len(txns))+" transactions?")
				if err != nil {
					return err
				}
				if !ok {
					a.println("Clear canceled.")
					return nil
				}
			}

			if err := a.book.Transactions.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear transactions: %w", err)
			}
			a.println(cli.FormatSuccess(fmt.Sprintf("Deleted %d transactions", len(txns))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")
	return cmd
}
