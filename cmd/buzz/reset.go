package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/cli"
)

func resetCmd() *cobra.Command {
	var (
		force bool
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all transactions and restore the default categories",
		Long: `Delete every transaction and custom category. With --all, preferences are
reset to their defaults and the stored session is signed out as well.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if !force {
				ok, err := cli.NewCLIPrompter(a.in, a.out).Confirm(ctx, "This permanently deletes your ledger. Continue?")
				if err != nil {
					return err
				}
				if !ok {
					a.println(cli.InfoStyle.Render("Reset cancelled."))
					return nil
				}
			}

			if err := a.book.WipeAll(ctx); err != nil {
				return fmt.Errorf("failed to reset ledger: %w", err)
			}

			if all {
				if err := a.settings.Reset(ctx); err != nil {
					return err
				}
				manager, err := newAuthManager(ctx, a)
				if err != nil {
					return err
				}
				if err := manager.SignOut(ctx); err != nil {
					return err
				}
			}

			a.println(cli.FormatSuccess("Ledger reset"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&all, "all", false, "also reset preferences and sign out")

	return cmd
}
