// ABOUTME: SMS reporting operations: sent messages and delivery stats
// ABOUTME: GET /api/sms/sent and /api/sms/stats, keyed by reporting period

package api

import (
	"context"
	"net/url"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
)

type sentMessagesResponse struct {
	Success bool            `json:"success"`
	SMS     []inbox.Message `json:"sms"`
	Error   string          `json:"error,omitempty"`
}

// SentMessages fetches the full sent-SMS collection for the period. The
// store owns the result wholesale; there is no server-side pagination.
func (c *Client) SentMessages(ctx context.Context, period inbox.Period) ([]inbox.Message, error) {
	query := url.Values{"period": {string(period)}}
	var resp sentMessagesResponse
	if err := c.getJSON(ctx, "/api/sms/sent", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{Reason: resp.Error}
	}
	return resp.SMS, nil
}

type statsResponse struct {
	Success bool        `json:"success"`
	Stats   inbox.Stats `json:"stats"`
	Error   string      `json:"error,omitempty"`
}

// Stats fetches the aggregate delivery counts for the period.
func (c *Client) Stats(ctx context.Context, period inbox.Period) (inbox.Stats, error) {
	query := url.Values{"period": {string(period)}}
	var resp statsResponse
	if err := c.getJSON(ctx, "/api/sms/stats", query, &resp); err != nil {
		return inbox.Stats{}, err
	}
	if !resp.Success {
		return inbox.Stats{}, &APIError{Reason: resp.Error}
	}
	return resp.Stats, nil
}
