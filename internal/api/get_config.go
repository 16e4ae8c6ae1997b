// ABOUTME: GetConfig operation fetching the stored provider credential
// ABOUTME: Maps GET /api/get-api-config's sparse data object to StoredConfig

package api

import (
	"context"

	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

// StoredConfig is the credential configuration persisted server-side. Key
// and model fields are present only for providers that have been saved.
type StoredConfig struct {
	Provider keys.Provider `json:"provider"`

	OpenAIKey    string `json:"openai_key,omitempty"`
	OpenAIModel  string `json:"openai_model,omitempty"`
	MistralKey   string `json:"mistral_key,omitempty"`
	MistralModel string `json:"mistral_model,omitempty"`
	ClaudeKey    string `json:"claude_key,omitempty"`
	ClaudeModel  string `json:"claude_model,omitempty"`
}

// Key returns the stored key for p, if any.
func (c *StoredConfig) Key(p keys.Provider) string {
	switch p {
	case keys.ProviderOpenAI:
		return c.OpenAIKey
	case keys.ProviderMistral:
		return c.MistralKey
	case keys.ProviderClaude:
		return c.ClaudeKey
	}
	return ""
}

// Model returns the stored model for p, falling back to the provider
// default when none was saved.
func (c *StoredConfig) Model(p keys.Provider) string {
	var m string
	switch p {
	case keys.ProviderOpenAI:
		m = c.OpenAIModel
	case keys.ProviderMistral:
		m = c.MistralModel
	case keys.ProviderClaude:
		m = c.ClaudeModel
	}
	if m == "" {
		return keys.DefaultModel(p)
	}
	return m
}

type getConfigResponse struct {
	Success bool          `json:"success"`
	Data    *StoredConfig `json:"data"`
	Error   string        `json:"error,omitempty"`
}

// GetConfig fetches the stored configuration. A nil result with a nil
// error means the user has never saved one.
func (c *Client) GetConfig(ctx context.Context) (*StoredConfig, error) {
	var resp getConfigResponse
	if err := c.getJSON(ctx, "/api/get-api-config", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Reason: resp.Error}
	}
	return resp.Data, nil
}
