package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/Veraticus/budget-buzz/internal/model"
)

// ErrNoCategories is returned when a category must be chosen from an empty list.
var ErrNoCategories = errors.New("no categories to choose from")

// Prompter asks the user questions on a terminal and reports import progress.
type Prompter struct {
	writer      io.Writer
	reader      *NonBlockingReader
	progressBar *progressbar.ProgressBar
	processed   int
	mu          sync.Mutex
}

// NewCLIPrompter creates a new CLI prompter with the given reader and writer.
func NewCLIPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Ask prints label and returns the trimmed answer, or def when the answer is empty.
func (p *Prompter) Ask(ctx context.Context, label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", label, def)
	}
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question. Anything but y or yes is a no, and so is
// closed input.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.Ask(ctx, question+" (y/N)", "")
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ChooseCategory lists categories and asks which one txn belongs to. An empty
// answer keeps suggested; a number picks from the list; a name matches
// case-insensitively.
func (p *Prompter) ChooseCategory(ctx context.Context, txn model.Transaction, categories []model.Category, suggested model.Category) (model.Category, error) {
	if len(categories) == 0 {
		return model.Category{}, ErrNoCategories
	}

	content := p.formatTransaction(txn)
	if _, err := fmt.Fprintln(p.writer, RenderBox("Imported Transaction", content)); err != nil {
		return model.Category{}, fmt.Errorf("failed to write transaction box: %w", err)
	}
	for i, cat := range categories {
		if _, err := fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, CategoryStyle(cat).Render(cat.Name)); err != nil {
			return model.Category{}, fmt.Errorf("failed to write category option: %w", err)
		}
	}

	for {
		answer, err := p.Ask(ctx, "Category", suggested.Name)
		if err != nil {
			return model.Category{}, err
		}
		if cat, ok := pickCategory(answer, categories); ok {
			p.advance()
			return cat, nil
		}
		if _, err := fmt.Fprintln(p.writer, FormatWarning("Unknown category, try again")); err != nil {
			return model.Category{}, fmt.Errorf("failed to write warning: %w", err)
		}
	}
}

func pickCategory(answer string, categories []model.Category) (model.Category, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(categories) {
			return categories[n-1], true
		}
		return model.Category{}, false
	}
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, strings.TrimSpace(answer)) {
			return cat, true
		}
	}
	return model.Category{}, false
}

func (p *Prompter) formatTransaction(txn model.Transaction) string {
	return fmt.Sprintf("%s Details:\n", InfoIcon) +
		fmt.Sprintf("  Date: %s\n", FormatDate(txn.Date)) +
		fmt.Sprintf("  Description: %s\n", txn.Description) +
		fmt.Sprintf("  Type: %s\n", TypeStyle(txn.Type).Render(Title(string(txn.Type)))) +
		fmt.Sprintf("  Amount: %s", txn.Amount.StringFixed(2))
}

// StartProgress shows a progress bar for total items.
func (p *Prompter) StartProgress(total int, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = 0
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[yellow][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// Advance marks one item done.
func (p *Prompter) Advance() {
	p.advance()
}

func (p *Prompter) advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed++
	if p.progressBar != nil {
		if err := p.progressBar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}
}

// Processed returns how many items were marked done since StartProgress.
func (p *Prompter) Processed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processed
}

// FinishProgress completes and removes the progress bar.
func (p *Prompter) FinishProgress() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
	p.progressBar = nil
}
