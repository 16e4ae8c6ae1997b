// ABOUTME: Sanitizing helpers for untrusted message content in the terminal
// ABOUTME: Strips control characters so SMS bodies cannot inject sequences

package tui

import (
	"strings"
	"unicode"
)

// sanitize removes control characters (including ANSI escape introducers)
// from untrusted text before it reaches the terminal. Message bodies come
// from arbitrary senders; a stray ESC must render as nothing, not as a
// cursor command.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// truncate shortens a string to maxLen runes, adding an ellipsis if
// anything was cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}

// pad right-pads or truncates s to exactly width runes.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(runes))
}
