// ABOUTME: Tests for terminal sanitizing helpers
// ABOUTME: Control characters must never reach the rendered output

package tui

import "testing"

func TestSanitizeStripsControlCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"esc\x1b[31mred\x1b[0m", "esc[31mred[0m"},
		{"bell\x07ring", "bellring"},
		{"line\nbreak\tand tab", "line break and tab"},
		{"", ""},
		{"accents éèç ok", "accents éèç ok"},
	}
	for _, tc := range cases {
		if got := sanitize(tc.in); got != tc.want {
			t.Errorf("sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("short string should pass through, got %q", got)
	}
	if got := truncate("hello world", 8); got != "hello w…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("héllo wörld", 8); len([]rune(got)) != 8 {
		t.Errorf("truncate must count runes, got %q", got)
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 4); len([]rune(got)) != 4 {
		t.Errorf("pad must clip to width, got %q", got)
	}
}
