// ABOUTME: Provider enum and per-provider API key format validation
// ABOUTME: Pure functions, no I/O; the form controller gates actions on these

package keys

import "strings"

// Provider identifies a completion-API vendor.
type Provider string

const (
	ProviderOpenAI  Provider = "openai"
	ProviderMistral Provider = "mistral"
	ProviderClaude  Provider = "claude"
)

// Providers returns all supported providers in picker order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderMistral, ProviderClaude}
}

// Known reports whether p is a supported provider.
func Known(p Provider) bool {
	switch p {
	case ProviderOpenAI, ProviderMistral, ProviderClaude:
		return true
	}
	return false
}

// DisplayName returns the human-readable vendor name.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderMistral:
		return "Mistral"
	case ProviderClaude:
		return "Claude"
	}
	return string(p)
}

// DefaultModel returns the model used when the stored config carries none.
func DefaultModel(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return "gpt-3.5-turbo"
	case ProviderMistral:
		return "mistral-small"
	case ProviderClaude:
		return "claude-sonnet-4"
	}
	return ""
}

// Valid reports whether rawKey satisfies p's credential format. Keys are
// trimmed before checking: pasted keys routinely carry stray whitespace.
// An unknown provider (including the empty string) never validates.
func Valid(p Provider, rawKey string) bool {
	key := strings.TrimSpace(rawKey)
	switch p {
	case ProviderOpenAI:
		return len(key) >= 20 && strings.HasPrefix(key, "sk-")
	case ProviderMistral:
		return len(key) >= 10
	case ProviderClaude:
		return len(key) >= 20 && strings.HasPrefix(key, "sk-ant-")
	}
	return false
}
