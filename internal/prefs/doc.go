// Package prefs persists small per-user UI preferences (last period,
// filter, theme) as a TOML file under the XDG config directory. Loading is
// best-effort: a missing or unreadable file yields the defaults.
// Credentials are never written here.
package prefs
