// Package tui provides the interactive terminal pieces built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Veraticus/budget-buzz/internal/cli"
)

// ErrCancelled is returned when the user quits while work is running.
var ErrCancelled = errors.New("canceled by user")

type doneMsg struct{}

// spinnerModel shows a spinner next to label until doneMsg arrives.
type spinnerModel struct {
	label     string
	spinner   spinner.Model
	done      bool
	cancelled bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)
	return spinnerModel{label: label, spinner: s}
}

// Init starts the spinner.
func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line, or nothing once finished.
func (m spinnerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.spinner.View() + " " + cli.SubtleStyle.Render(m.label) + "\n"
}

// RunWithSpinner runs fn while a spinner labelled label animates on w. When w is
// not a terminal fn runs without any animation. Quitting the spinner cancels the
// context handed to fn and returns ErrCancelled.
func RunWithSpinner[T any](ctx context.Context, w io.Writer, label string, fn func(context.Context) (T, error)) (T, error) {
	if !IsTerminal(w) {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		err   error
		value T
	}
	results := make(chan result, 1)

	program := tea.NewProgram(newSpinnerModel(label), tea.WithOutput(w), tea.WithContext(ctx))
	go func() {
		value, err := fn(ctx)
		results <- result{value: value, err: err}
		program.Send(doneMsg{})
	}()

	final, runErr := program.Run()
	if m, ok := final.(spinnerModel); ok && m.cancelled {
		cancel()
		<-results
		var zero T
		return zero, ErrCancelled
	}

	res := <-results
	if res.err != nil {
		return res.value, res.err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return res.value, fmt.Errorf("spinner failed: %w", runErr)
	}
	return res.value, nil
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
