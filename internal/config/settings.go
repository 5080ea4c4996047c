package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/budget-buzz/internal/common"
	"github.com/Veraticus/budget-buzz/internal/service"
)

// Setting defaults.
const (
	DefaultCurrencySymbol         = "₹"
	DefaultNotificationsEnabled   = true
	DefaultBudgetWarningThreshold = 80
)

// ErrUnknownSetting is returned by Set for a name that is not a user setting.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingNames lists the user settings in display order.
var SettingNames = []string{
	service.KeyCurrencySymbol,
	service.KeyNotificationsEnabled,
	service.KeyBudgetWarningThreshold,
}

// Values is a snapshot of every user setting.
type Values struct {
	CurrencySymbol         string
	BudgetWarningThreshold int
	NotificationsEnabled   bool
}

// Settings reads and writes user preferences stored next to the ledger.
// Missing or unreadable values resolve to their defaults.
type Settings struct {
	kv service.KeyValueStore
}

// NewSettings creates settings backed by kv.
func NewSettings(kv service.KeyValueStore) *Settings {
	return &Settings{kv: kv}
}

// CurrencySymbol returns the symbol prefixed to formatted amounts.
func (s *Settings) CurrencySymbol(ctx context.Context) (string, error) {
	symbol := DefaultCurrencySymbol
	if err := s.read(ctx, service.KeyCurrencySymbol, &symbol); err != nil {
		return DefaultCurrencySymbol, err
	}
	if strings.TrimSpace(symbol) == "" {
		return DefaultCurrencySymbol, nil
	}
	return symbol, nil
}

// SetCurrencySymbol stores the currency symbol.
func (s *Settings) SetCurrencySymbol(ctx context.Context, symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return fmt.Errorf("%w: currency symbol is required", common.ErrValidation)
	}
	return s.write(ctx, service.KeyCurrencySymbol, symbol)
}

// NotificationsEnabled reports whether budget alerts are shown.
func (s *Settings) NotificationsEnabled(ctx context.Context) (bool, error) {
	enabled := DefaultNotificationsEnabled
	if err := s.read(ctx, service.KeyNotificationsEnabled, &enabled); err != nil {
		return DefaultNotificationsEnabled, err
	}
	return enabled, nil
}

// SetNotificationsEnabled stores the notifications flag.
func (s *Settings) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	return s.write(ctx, service.KeyNotificationsEnabled, enabled)
}

// BudgetWarningThreshold returns the spent percentage at which a budget alert fires.
func (s *Settings) BudgetWarningThreshold(ctx context.Context) (int, error) {
	threshold := DefaultBudgetWarningThreshold
	if err := s.read(ctx, service.KeyBudgetWarningThreshold, &threshold); err != nil {
		return DefaultBudgetWarningThreshold, err
	}
	if threshold < 0 || threshold > 100 {
		common.LogWarn(fmt.Errorf("%w: threshold %d out of range", common.ErrValidation, threshold),
			"budget warning threshold out of range, using default", nil)
		return DefaultBudgetWarningThreshold, nil
	}
	return threshold, nil
}

// SetBudgetWarningThreshold stores the alert threshold, which must be within 0..100.
func (s *Settings) SetBudgetWarningThreshold(ctx context.Context, threshold int) error {
	if threshold < 0 || threshold > 100 {
		return fmt.Errorf("%w: threshold must be between 0 and 100, got %d", common.ErrValidation, threshold)
	}
	return s.write(ctx, service.KeyBudgetWarningThreshold, threshold)
}

// Load returns every setting at once.
func (s *Settings) Load(ctx context.Context) (Values, error) {
	var (
		v   Values
		err error
	)
	if v.CurrencySymbol, err = s.CurrencySymbol(ctx); err != nil {
		return v, err
	}
	if v.NotificationsEnabled, err = s.NotificationsEnabled(ctx); err != nil {
		return v, err
	}
	if v.BudgetWarningThreshold, err = s.BudgetWarningThreshold(ctx); err != nil {
		return v, err
	}
	return v, nil
}

// Set parses raw and stores it under the named setting.
func (s *Settings) Set(ctx context.Context, name, raw string) error {
	switch name {
	case service.KeyCurrencySymbol:
		return s.SetCurrencySymbol(ctx, raw)
	case service.KeyNotificationsEnabled:
		enabled, err := parseBool(raw)
		if err != nil {
			return err
		}
		return s.SetNotificationsEnabled(ctx, enabled)
	case service.KeyBudgetWarningThreshold:
		var threshold int
		if _, err := fmt.Sscan(raw, &threshold); err != nil {
			return fmt.Errorf("%w: threshold must be a whole number, got %q", common.ErrValidation, raw)
		}
		return s.SetBudgetWarningThreshold(ctx, threshold)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, name)
	}
}

// Reset removes every stored setting so the defaults apply again.
func (s *Settings) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SettingNames...); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	return nil
}

// read decodes the value under key into dst, leaving dst untouched when the key
// is absent or unreadable. Only storage failures are returned.
func (s *Settings) read(ctx context.Context, key string, dst any) error {
	data, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		common.LogWarn(err, "unreadable setting, using default", common.Fields{"key": key})
	}
	return nil
}

func (s *Settings) write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected true or false, got %q", common.ErrValidation, raw)
	}
}
