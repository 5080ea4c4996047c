package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage spending categories and their budgets",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(budgetCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			categories, err := a.book.Categories.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			if len(categories) == 0 {
				a.println(cli.InfoStyle.Render("No categories found. Use 'buzz categories add' to create one."))
				return nil
			}

			symbol := a.currencySymbol(ctx)
			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Icon"),
				cli.BoldStyle.Render("Color"),
				cli.BoldStyle.Render("Budget"),
				cli.BoldStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 18),
				strings.Repeat("-", 7),
				strings.Repeat("-", 12),
				strings.Repeat("-", 36))

			for _, cat := range categories {
				budget := cli.SubtleStyle.Render("(none)")
				if cat.HasBudget() {
					budget = cli.FormatCurrency(*cat.Budget, symbol)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					cli.CategoryStyle(cat).Render(cat.Name),
					cat.Icon,
					cat.Color,
					budget,
					cli.SubtleStyle.Render(cat.ID))
			}
			return w.Flush()
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		icon   string
		color  string
		budget string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			cat := model.Category{Name: name, Icon: icon, Color: color}
			if budget != "" {
				value, err := parseBudget(budget)
				if err != nil {
					return err
				}
				cat.Budget = value
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, exists, err := a.book.Categories.FindByName(ctx, name); err != nil {
				return fmt.Errorf("failed to check existing category: %w", err)
			} else if exists {
				return common.NewUserError(fmt.Sprintf("Category %q already exists", name), common.ErrValidation)
			}

			added, err := a.book.Categories.Add(ctx, cat)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			a.println(cli.FormatSuccess(fmt.Sprintf("Created category %q (ID: %s)", added.Name, added.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "tag", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "hex color such as #FF9800 (default: gray)")
	cmd.Flags().StringVarP(&budget, "budget", "b", "", "monthly spending cap")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name  string
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "update <name-or-id>",
		Short: "Rename or restyle a category",
		Long: `Update a category's name, icon or color. Transactions already recorded keep
the category as it was when they were added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if name == "" && icon == "" && color == "" {
				return common.NewUserError("Nothing to update: pass --name, --icon or --color", common.ErrValidation)
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cat, err := a.findCategory(ctx, args[0])
			if err != nil {
				return err
			}
			if name != "" {
				cat.Name = name
			}
			if icon != "" {
				cat.Icon = icon
			}
			if color != "" {
				cat.Color = color
			}

			if err := a.book.Categories.Update(ctx, cat); err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}
			a.println(cli.FormatSuccess(fmt.Sprintf("Updated category %q", cat.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "new icon name")
	cmd.Flags().StringVar(&color, "color", "", "new hex color")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name-or-id>",
		Short: "Delete a category",
		Long:  `Delete a category. Transactions recorded under it keep their copy of the category.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cat, err := a.findCategory(ctx, args[0])
			if err != nil {
				return err
			}
			if err := a.book.Categories.Delete(ctx, cat.ID); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}
			a.println(cli.FormatSuccess(fmt.Sprintf("Deleted category %q", cat.Name)))
			return nil
		},
	}
}

func budgetCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget <name-or-id> <amount|none>",
		Short: "Set or remove a category's monthly cap",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var value *decimal.Decimal
			if !strings.EqualFold(args[1], "none") {
				parsed, err := parseBudget(args[1])
				if err != nil {
					return err
				}
				value = parsed
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cat, err := a.findCategory(ctx, args[0])
			if err != nil {
				return err
			}
			updated, err := a.book.Categories.SetBudget(ctx, cat.ID, value)
			if err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			if updated.HasBudget() {
				a.println(cli.FormatSuccess(fmt.Sprintf("%s budget set to %s per month",
					updated.Name, cli.FormatCurrency(*updated.Budget, a.currencySymbol(ctx)))))
			} else {
				a.println(cli.FormatSuccess(fmt.Sprintf("Removed %s budget", updated.Name)))
			}
			return nil
		},
	}
}

func parseBudget(s string) (*decimal.Decimal, error) {
	value, err := cli.ParseAmount(s)
	if err != nil {
		return nil, common.NewUserError(err.Error(), common.ErrValidation)
	}
	if value.IsNegative() {
		return nil, common.NewUserError("Budget cannot be negative", common.ErrValidation)
	}
	return &value, nil
}
