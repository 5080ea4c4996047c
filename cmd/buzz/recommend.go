package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/budget-buzz/internal/advisor"
	"github.com/Veraticus/budget-buzz/internal/cli"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/tui"
)

func recommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"advice"},
		Short:   "Get financial recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			generator := &advisor.Generator{Delay: viper.GetDuration("advisor.delay")}
			profile := advisor.SampleProfile(clock())

			recs, err := tui.RunWithSpinner(ctx, out, "Analyzing your finances...",
				func(ctx context.Context) ([]model.Recommendation, error) {
					return generator.Generate(ctx, profile)
				})
			if err != nil {
				return fmt.Errorf("failed to generate recommendations: %w", err)
			}

			fmt.Fprintln(out, cli.FormatTitle(cli.BulbIcon+" Recommendations"))
			for _, rec := range recs {
				fmt.Fprintln(out, renderRecommendation(rec))
			}
			return nil
		},
	}
}

func priorityStyle(p model.RecommendationPriority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return cli.ErrorStyle
	case model.PriorityMedium:
		return cli.WarningStyle
	default:
		return cli.InfoStyle
	}
}

func renderRecommendation(rec model.Recommendation) string {
	header := fmt.Sprintf("%s  %s",
		priorityStyle(rec.Priority).Render(string(rec.Priority)),
		cli.SubtleStyle.Render(string(rec.Category)))
	content := fmt.Sprintf("%s\n\n%s", header, rec.Description)
	if rec.Action != "" {
		content += "\n" + cli.PromptStyle.Render("→ "+rec.Action)
	}
	return cli.RenderBox(rec.Title, content)
}
