// ABOUTME: Tests for provider key validation rules
// ABOUTME: Covers per-provider formats, trimming, and unknown providers

package keys

import (
	"strings"
	"testing"
)

func TestValidOpenAI(t *testing.T) {
	cases := []struct {
		name string
		key  string
		want bool
	}{
		{"typical key", "sk-xxxxxxxxxxxxxxxxxxxx", true},
		{"exactly 20 chars", "sk-" + strings.Repeat("a", 17), true},
		{"19 chars", "sk-" + strings.Repeat("a", 16), false},
		{"long but no prefix", strings.Repeat("x", 40), false},
		{"surrounding whitespace", "  sk-xxxxxxxxxxxxxxxxxxxx\n", true},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Valid(ProviderOpenAI, tc.key); got != tc.want {
				t.Errorf("Valid(openai, %q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

// Embedded "sk-" markers used to slip through; the rule is now a strict prefix.
func TestValidLegacyEmbeddedMarker(t *testing.T) {
	key := "xxxxsk-xxxxxxxxxxxxxxxxxxxx"
	if Valid(ProviderOpenAI, key) {
		t.Errorf("embedded sk- marker should no longer validate: %q", key)
	}
}

func TestValidMistral(t *testing.T) {
	if !Valid(ProviderMistral, "abcdefghij") {
		t.Error("10-char mistral key should be valid")
	}
	if Valid(ProviderMistral, "short") {
		t.Error("5-char mistral key should be invalid")
	}
	if Valid(ProviderMistral, "   short   ") {
		t.Error("padding must not count toward the length requirement")
	}
}

func TestValidClaude(t *testing.T) {
	for _, key := range []string{
		"",
		"sk-ant-short",
		"sk-" + strings.Repeat("x", 30), // long, wrong prefix
		strings.Repeat("x", 30),
	} {
		if Valid(ProviderClaude, key) {
			t.Errorf("Valid(claude, %q) = true, want false", key)
		}
	}
	if !Valid(ProviderClaude, "sk-ant-"+strings.Repeat("x", 20)) {
		t.Error("well-formed claude key should be valid")
	}
}

// Valid(claude, s) must agree with the documented rule for arbitrary input.
func TestValidClaudeMatchesRule(t *testing.T) {
	inputs := []string{
		"", " ", "sk-ant-", "sk-ant-xxxxxxxxxxxxx", "sk-ant-xxxxxxxxxxxxxx",
		"  sk-ant-REDACTED  ", "sk-xxxxxxxxxxxxxxxxxxxxxxxxx",
		strings.Repeat("sk-ant-", 5),
	}
	for _, s := range inputs {
		trimmed := strings.TrimSpace(s)
		want := len(trimmed) >= 20 && strings.HasPrefix(trimmed, "sk-ant-")
		if got := Valid(ProviderClaude, s); got != want {
			t.Errorf("Valid(claude, %q) = %v, want %v", s, got, want)
		}
	}
}

func TestValidUnknownProvider(t *testing.T) {
	if Valid(Provider(""), "sk-xxxxxxxxxxxxxxxxxxxx") {
		t.Error("empty provider must never validate")
	}
	if Valid(Provider("cohere"), "sk-xxxxxxxxxxxxxxxxxxxx") {
		t.Error("unsupported provider must never validate")
	}
}

func TestDefaultModel(t *testing.T) {
	cases := map[Provider]string{
		ProviderOpenAI:  "gpt-3.5-turbo",
		ProviderMistral: "mistral-small",
		ProviderClaude:  "claude-sonnet-4",
		Provider("bogus"): "",
	}
	for p, want := range cases {
		if got := DefaultModel(p); got != want {
			t.Errorf("DefaultModel(%s) = %q, want %q", p, got, want)
		}
	}
}

func TestProvidersKnown(t *testing.T) {
	for _, p := range Providers() {
		if !Known(p) {
			t.Errorf("Providers() returned unknown provider %s", p)
		}
	}
	if Known(Provider("twilio")) {
		t.Error("twilio is not a completion provider")
	}
}
