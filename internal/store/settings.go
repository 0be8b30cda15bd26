package store

import (
	"fmt"
	"strings"

	"github.com/tallybook/tallybook/internal/format"
	"github.com/tallybook/tallybook/internal/shared"
	"github.com/tallybook/tallybook/internal/snapshot"
)

// Settings returns a copy of the current settings.
func (s *Store) Settings() snapshot.Settings { return s.data.Settings }

// SetTheme stores the display theme name. The value is opaque to the store.
func (s *Store) SetTheme(name string) error {
	s.data.Settings.Theme = name
	return s.Persist()
}

// SetPriceMode selects money rendering: "int" or "float".
func (s *Store) SetPriceMode(mode string) error {
	mode = strings.TrimSpace(mode)
	if mode != "int" && mode != "float" {
		return fmt.Errorf("%w: price mode %q", shared.ErrValidation, mode)
	}
	s.data.Settings.PriceMode = mode
	return s.Persist()
}

// SetPriceDecimals sets the fraction digits used in float price mode.
func (s *Store) SetPriceDecimals(n int) error {
	if n < 0 || n > 6 {
		return fmt.Errorf("%w: price decimals %d out of range 0..6", shared.ErrValidation, n)
	}
	s.data.Settings.PriceDecimals = n
	return s.Persist()
}

// SetDangerConfirmPhrase sets the phrase the presentation layer asks the user
// to type back before irreversible operations. The store itself never checks
// it.
func (s *Store) SetDangerConfirmPhrase(phrase string) error {
	s.data.Settings.DangerConfirmPhrase = phrase
	return s.Persist()
}

// SetShowDeletedByDefault stores the UI default for deleted-record visibility.
func (s *Store) SetShowDeletedByDefault(v bool) error {
	s.data.Settings.ShowDeletedByDefault = v
	return s.Persist()
}

// ResetSettings restores all settings to their defaults.
func (s *Store) ResetSettings() error {
	s.data.Settings = snapshot.DefaultSettings()
	return s.Persist()
}

// MoneyString renders v according to the current price mode and decimals.
func (s *Store) MoneyString(v int64) string {
	return format.Money(v, s.data.Settings.PriceMode, s.data.Settings.PriceDecimals)
}
