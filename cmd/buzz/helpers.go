package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/config"
	"github.com/Veraticus/budget-buzz/internal/ledger"
	"github.com/Veraticus/budget-buzz/internal/model"
	"github.com/Veraticus/budget-buzz/internal/service"
	"github.com/Veraticus/budget-buzz/internal/storage"
)

// clock is the time source for new transactions and the reference month.
var clock = time.Now

// openStore opens the key-value store commands work on.
var openStore = initStorage

// initStorage opens the SQLite ledger with proper path expansion and migrations.
func initStorage(ctx context.Context) (service.KeyValueStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// app is what a command needs: the stores, the settings and its output streams.
type app struct {
	kv       service.KeyValueStore
	book     *ledger.Book
	settings *config.Settings
	out      io.Writer
	errOut   io.Writer
	in       io.Reader
}

func openApp(cmd *cobra.Command) (*app, error) {
	kv, err := openStore(cmd.Context())
	if err != nil {
		return nil, err
	}
	return &app{
		kv:       kv,
		book:     ledger.NewBook(kv, ledger.WithClock(clock)),
		settings: config.NewSettings(kv),
		out:      cmd.OutOrStdout(),
		errOut:   cmd.ErrOrStderr(),
		in:       cmd.InOrStdin(),
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		slog.Warn("Failed to close storage", "error", err)
	}
}

func (a *app) println(s string) {
	if _, err := fmt.Fprintln(a.out, s); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func (a *app) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(a.out, format, args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func (a *app) currencySymbol(ctx context.Context) string {
	symbol, err := a.settings.CurrencySymbol(ctx)
	if err != nil {
		slog.Warn("Failed to read currency symbol, using default", "error", err)
		return config.DefaultCurrencySymbol
	}
	return symbol
}

// findCategory resolves ref as a category id first, then as a case-insensitive name.
func (a *app) findCategory(ctx context.Context, ref string) (model.Category, error) {
	cat, ok, err := a.book.Categories.Get(ctx, ref)
	if err != nil {
		return model.Category{}, err
	}
	if ok {
		return cat, nil
	}

	cat, ok, err = a.book.Categories.FindByName(ctx, ref)
	if err != nil {
		return model.Category{}, err
	}
	if !ok {
		return model.Category{}, common.NewUserError(fmt.Sprintf("Category %q not found", ref), common.ErrNotFound)
	}
	return cat, nil
}

// referenceMonth parses --month (YYYY-MM) or falls back to the current month.
func referenceMonth(month string) (time.Time, error) {
	if month == "" {
		return clock(), nil
	}
	ref, err := time.ParseInLocation("2006-01", strings.TrimSpace(month), time.Local)
	if err != nil {
		return time.Time{}, common.NewUserError(fmt.Sprintf("Invalid month %q, expected YYYY-MM", month), common.ErrValidation)
	}
	return ref, nil
}

// parseDate parses a YYYY-MM-DD date at noon local time. Empty means unset.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, common.NewUserError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", s), common.ErrValidation)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.Local), nil
}
