package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/classification"
	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/ofx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from bank exports",
	}
	cmd.AddCommand(importOFXCmd())
	return cmd
}

type importOptions struct {
	category    string
	dryRun      bool
	interactive bool
	suggest     bool
}

func importOFXCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "ofx <files...>",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from your bank.
Credits are recorded as income and debits as expenses. Each transaction is filed
under the category its description suggests (NETFLIX as Entertainment, PAYROLL
as Salary) or under --category when nothing matches. Importing the same
statement twice adds nothing new.

Examples:
  # Import a single file
  buzz import ofx ~/Downloads/checking_jan.qfx

  # Import every statement in a directory, choosing categories as you go
  buzz import ofx --interactive ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportOFX(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "Other", "category for imported transactions")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "preview import without saving")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose a category for each transaction")
	cmd.Flags().BoolVar(&opts.suggest, "suggest", true, "pick categories from transaction descriptions")

	return cmd
}

// expandFiles resolves glob patterns, keeping literal paths that exist.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			slog.Warn("No files found matching pattern", "pattern", pattern)
		}
	}
	return files, nil
}

func runImportOFX(cmd *cobra.Command, args []string, opts importOptions) error {
	files, err := expandFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return common.NewUserError("No files found to import", common.ErrNotFound)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	handler := cli.NewInterruptHandler(a.errOut)
	ctx, stop := handler.HandleInterrupts(cmd.Context(), "import")
	defer stop()

	category, err := a.findCategory(ctx, opts.category)
	if err != nil {
		return err
	}

	parser := ofx.NewParser(category)
	prompter := cli.NewCLIPrompter(a.in, a.out)

	var parsed []model.Transaction
	if !opts.interactive {
		prompter.StartProgress(len(files), "Reading statements")
	}
	for _, path := range files {
		txns, err := parseStatement(ctx, parser, path)
		if err != nil {
			slog.Error("Failed to import file", "file", path, "error", err)
		} else {
			parsed = append(parsed, txns...)
		}
		if !opts.interactive {
			prompter.Advance()
		}
	}
	if !opts.interactive {
		prompter.FinishProgress()
	}

	existing, err := a.book.Transactions.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	fresh := ofx.NewOnly(existing, parsed)
	skipped := len(parsed) - len(fresh)

	if len(fresh) == 0 {
		a.println(cli.FormatInfo(fmt.Sprintf("No new transactions (%d already imported)", skipped)))
		return nil
	}

	categories, err := a.book.Categories.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}
	if opts.suggest {
		if err := suggestCategories(ctx, fresh, categories); err != nil {
			return err
		}
	}

	if opts.interactive {
		for i := range fresh {
			chosen, err := prompter.ChooseCategory(ctx, fresh[i], categories, fresh[i].Category)
			if err != nil {
				if errors.Is(err, cli.ErrInputCancelled) || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
					return common.NewUserError("Import interrupted, nothing was saved", err)
				}
				return err
			}
			fresh[i].Category = chosen
		}
	}

	symbol := a.currencySymbol(ctx)
	if opts.dryRun {
		a.println(cli.FormatWarning("Dry run, nothing was saved"))
		writeTransactionTable(a, fresh, symbol)
		return nil
	}

	added, err := a.book.Transactions.AddMany(ctx, fresh)
	if err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	a.println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %d files (%d already imported)",
		len(added), len(files), skipped)))
	return nil
}

// parseStatement reads one OFX file and converts its transactions.
func parseStatement(ctx context.Context, parser *ofx.Parser, path string) ([]model.Transaction, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	accounts, err := parser.GetAccounts(ctx, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	txns, err := parser.ParseFile(ctx, bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	slog.Info("Processed file",
		"file", filepath.Base(path),
		"accounts", accounts,
		"transactions", len(txns))
	return txns, nil
}

// suggestCategories files each transaction under the category its description matches.
func suggestCategories(ctx context.Context, txns []model.Transaction, categories []model.Category) error {
	detector, err := classification.NewPatternDetector(classification.DefaultPatterns())
	if err != nil {
		return fmt.Errorf("failed to load category patterns: %w", err)
	}

	suggested := 0
	for i := range txns {
		if cat, ok := detector.Suggest(ctx, txns[i], categories); ok {
			txns[i].Category = cat
			suggested++
		}
	}
	slog.Debug("Suggested categories", "matched", suggested, "total", len(txns))
	return nil
}
