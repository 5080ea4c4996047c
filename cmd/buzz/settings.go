package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/config"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE:  showSettings,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE:  showSettings,
	})
	cmd.AddCommand(setSettingCmd())

	return cmd
}

func showSettings(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	values, err := a.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	notifications := "off"
	if values.NotificationsEnabled {
		notifications = "on"
	}
	content := fmt.Sprintf("currencySymbol          %s\nnotificationsEnabled    %s\nbudgetWarningThreshold  %d%%",
		values.CurrencySymbol, notifications, values.BudgetWarningThreshold)
	a.println(cli.RenderBox("Settings", content))
	return nil
}

func setSettingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Change a preference",
		Long: `Change a preference. Names:

  currencySymbol          symbol printed before amounts, e.g. $
  notificationsEnabled    on/off, show budget alerts on the dashboard
  budgetWarningThreshold  0-100, percent of a budget at which alerts start`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.settings.Set(ctx, args[0], args[1]); err != nil {
				if errors.Is(err, config.ErrUnknownSetting) {
					return common.NewUserError(fmt.Sprintf("Unknown setting %q (valid: %s)",
						args[0], strings.Join(config.SettingNames, ", ")), err)
				}
				if errors.Is(err, common.ErrValidation) {
					return common.NewUserError(err.Error(), err)
				}
				return fmt.Errorf("failed to save setting: %w", err)
			}

			a.println(cli.FormatSuccess(fmt.Sprintf("Set %s to %s", args[0], args[1])))
			return nil
		},
	}
}
