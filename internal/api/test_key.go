// ABOUTME: TestKey operation live-testing a credential via the backend
// ABOUTME: POST /api/test-api-key with {provider, api_key, model}

package api

import (
	"context"

	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

// TestKeyRequest asks the backend to run a minimal completion against the
// vendor with the supplied credential.
type TestKeyRequest struct {
	Provider keys.Provider `json:"provider"`
	APIKey   string        `json:"api_key"`
	Model    string        `json:"model"`
}

type testKeyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TestKey runs the live credential test. On success the returned message
// describes the working model; a success:false answer (bad key, quota,
// unsupported model) comes back as *APIError.
func (c *Client) TestKey(ctx context.Context, req TestKeyRequest) (string, error) {
	var resp testKeyResponse
	if err := c.postJSON(ctx, "/api/test-api-key", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &APIError{Reason: resp.Error}
	}
	return resp.Message, nil
}
