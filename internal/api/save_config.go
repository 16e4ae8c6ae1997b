// ABOUTME: SaveConfig operation persisting a provider credential
// ABOUTME: POST /api/save-api-config with provider-prefixed key/model fields

package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

// SaveConfigRequest names the credential to persist. The wire format keys
// the credential fields by provider: {provider, <provider>_key,
// <provider>_model}.
type SaveConfigRequest struct {
	Provider keys.Provider
	Key      string
	Model    string
}

// MarshalJSON emits the provider-prefixed field names the backend expects.
func (r SaveConfigRequest) MarshalJSON() ([]byte, error) {
	if !keys.Known(r.Provider) {
		return nil, fmt.Errorf("unknown provider %q", r.Provider)
	}
	payload := map[string]string{
		"provider": string(r.Provider),
		fmt.Sprintf("%s_key", r.Provider):   r.Key,
		fmt.Sprintf("%s_model", r.Provider): r.Model,
	}
	return json.Marshal(payload)
}

type saveConfigResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SaveConfig persists the credential. The returned message, when non-empty,
// is the server's confirmation text for the results panel.
func (c *Client) SaveConfig(ctx context.Context, req SaveConfigRequest) (string, error) {
	var resp saveConfigResponse
	if err := c.postJSON(ctx, "/api/save-api-config", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &APIError{Reason: resp.Error}
	}
	return resp.Message, nil
}
