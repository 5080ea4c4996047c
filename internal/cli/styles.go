// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
)

var (
	// PrimaryColor is the main theme color (honey).
	PrimaryColor = lipgloss.Color("#F5A623")
	// SuccessColor indicates successful operations and healthy budgets.
	SuccessColor = lipgloss.Color("#4CAF50") // Green
	// WarningColor indicates budgets nearing their cap.
	WarningColor = lipgloss.Color("#FF9800") // Orange
	// ErrorColor indicates errors and exhausted budgets.
	ErrorColor = lipgloss.Color("#F44336") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#2196F3") // Blue
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	BeeIcon     = "🐝"
	ChartIcon   = "📊"
	BulbIcon    = "💡"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the bee icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(BeeIcon + " " + title)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, boxTitle, content))
}

// TierStyle colors text by budget tier: ok green, warning orange, over red.
func TierStyle(tier ledger.Tier) lipgloss.Style {
	switch tier {
	case ledger.TierWarning:
		return WarningStyle
	case ledger.TierOver:
		return ErrorStyle
	default:
		return SuccessStyle
	}
}

// TypeStyle colors text by transaction type.
func TypeStyle(t model.TransactionType) lipgloss.Style {
	switch t {
	case model.TransactionTypeIncome:
		return SuccessStyle
	case model.TransactionTypeExpense:
		return ErrorStyle
	default:
		return InfoStyle
	}
}

// CategoryStyle renders text in the category's own color.
func CategoryStyle(cat model.Category) lipgloss.Style {
	if cat.Color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color))
}
