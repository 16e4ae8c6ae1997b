// ABOUTME: UI preferences persisted as TOML under the XDG config directory
// ABOUTME: Best-effort load with defaults; saved on clean exit

package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
)

// Prefs are the persisted view preferences.
type Prefs struct {
	Period string `toml:"period"`
	Filter string `toml:"filter"`
	Theme  string `toml:"theme"`
}

// Defaults returns the preferences used when no file exists.
func Defaults() Prefs {
	return Prefs{
		Period: string(inbox.PeriodToday),
		Filter: string(inbox.FilterAll),
		Theme:  "dark",
	}
}

// DefaultPath returns the preferences file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "monchat", "console.toml"), nil
}

// Load reads preferences from path. Missing or malformed files fall back
// to Defaults; only the fallback is reported, never an error, since stale
// preferences must not block startup.
func Load(path string) Prefs {
	p := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if _, err := toml.Decode(string(data), &p); err != nil {
		return Defaults()
	}
	p.normalize()
	return p
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening preferences file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return nil
}

// InboxPeriod returns the persisted period as its enum type.
func (p Prefs) InboxPeriod() inbox.Period {
	return inbox.Period(p.Period)
}

// InboxFilter returns the persisted filter as its enum type.
func (p Prefs) InboxFilter() inbox.Filter {
	return inbox.Filter(p.Filter)
}

// normalize replaces values outside the known enums with defaults so a
// hand-edited file cannot put the view into an impossible state.
func (p *Prefs) normalize() {
	switch inbox.Period(p.Period) {
	case inbox.PeriodToday, inbox.PeriodWeek, inbox.PeriodMonth, inbox.PeriodAll:
	default:
		p.Period = string(inbox.PeriodToday)
	}
	switch inbox.Filter(p.Filter) {
	case inbox.FilterAll, inbox.FilterDelivered, inbox.FilterFailed:
	default:
		p.Filter = string(inbox.FilterAll)
	}
	if p.Theme != "dark" && p.Theme != "light" {
		p.Theme = "dark"
	}
}
