// ABOUTME: Tests for the admin API client against httptest fake servers
// ABOUTME: Verifies wire shapes, CSRF header, and the error taxonomy

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

func TestGetConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/get-api-config", r.URL.Path)
		assert.Equal(t, "csrf-abc", r.Header.Get(CSRFHeader))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"provider":"claude","claude_key":"sk-ant-xxxxxxxxxxxxxxxxx","claude_model":"claude-sonnet-4"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, WithCSRFToken("csrf-abc"))
	cfg, err := client.GetConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, keys.ProviderClaude, cfg.Provider)
	assert.Equal(t, "sk-ant-xxxxxxxxxxxxxxxxx", cfg.Key(keys.ProviderClaude))
	assert.Equal(t, "claude-sonnet-4", cfg.Model(keys.ProviderClaude))
	assert.Empty(t, cfg.Key(keys.ProviderOpenAI))
}

func TestGetConfigNoneStored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":null,"message":"no configuration found"}`))
	}))
	defer srv.Close()

	cfg, err := New(srv.URL).GetConfig(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestStoredConfigModelFallback(t *testing.T) {
	cfg := &StoredConfig{Provider: keys.ProviderMistral, MistralKey: "abcdefghij"}
	assert.Equal(t, "mistral-small", cfg.Model(keys.ProviderMistral))
}

func TestSaveConfigWireFormat(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/save-api-config", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"success":true,"message":"Configuration openai sauvegardée"}`))
	}))
	defer srv.Close()

	msg, err := New(srv.URL).SaveConfig(context.Background(), SaveConfigRequest{
		Provider: keys.ProviderOpenAI,
		Key:      "sk-xxxxxxxxxxxxxxxxxxxx",
		Model:    "gpt-3.5-turbo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Configuration openai sauvegardée", msg)

	// Field names are prefixed by the provider, not fixed.
	assert.Equal(t, "openai", body["provider"])
	assert.Equal(t, "sk-xxxxxxxxxxxxxxxxxxxx", body["openai_key"])
	assert.Equal(t, "gpt-3.5-turbo", body["openai_model"])
	assert.NotContains(t, body, "api_key")
}

func TestSaveConfigUnknownProvider(t *testing.T) {
	_, err := New("http://unused").SaveConfig(context.Background(), SaveConfigRequest{
		Provider: keys.Provider("cohere"),
	})
	require.Error(t, err)
}

func TestSaveConfigBusinessFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"Données manquantes"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).SaveConfig(context.Background(), SaveConfigRequest{
		Provider: keys.ProviderMistral,
		Key:      "abcdefghij",
		Model:    "mistral-small",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Données manquantes", apiErr.Reason)
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestTestKeyWireFormat(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/test-api-key", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"success":true,"message":"Clé OpenAI valide"}`))
	}))
	defer srv.Close()

	msg, err := New(srv.URL).TestKey(context.Background(), TestKeyRequest{
		Provider: keys.ProviderOpenAI,
		APIKey:   "sk-xxxxxxxxxxxxxxxxxxxx",
		Model:    "gpt-4o",
	})
	require.NoError(t, err)
	assert.Equal(t, "Clé OpenAI valide", msg)

	// Unlike save, the test endpoint uses fixed field names.
	assert.Equal(t, "openai", body["provider"])
	assert.Equal(t, "sk-xxxxxxxxxxxxxxxxxxxx", body["api_key"])
	assert.Equal(t, "gpt-4o", body["model"])
}

func TestSentMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sms/sent", r.URL.Path)
		assert.Equal(t, "week", r.URL.Query().Get("period"))
		w.Write([]byte(`{"success":true,"sms":[
			{"id":1,"recipient":"+33612340001","message":"bonjour","status":"delivered","provider":"twilio","sent_at":"2025-03-01T09:00:00Z"},
			{"id":2,"recipient":"+33612340002","message":"","status":"failed","provider":"twilio","sent_at":"2025-03-01T09:05:00Z","error_message":"carrier rejected"}
		]}`))
	}))
	defer srv.Close()

	msgs, err := New(srv.URL).SentMessages(context.Background(), inbox.PeriodWeek)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(1), msgs[0].ID)
	assert.Equal(t, inbox.StatusDelivered, msgs[0].Status)
	assert.Equal(t, "carrier rejected", msgs[1].ErrorMessage)
	assert.Empty(t, msgs[1].Body)
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sms/stats", r.URL.Path)
		assert.Equal(t, "today", r.URL.Query().Get("period"))
		w.Write([]byte(`{"success":true,"stats":{"total":45,"delivered":40,"failed":5}}`))
	}))
	defer srv.Close()

	stats, err := New(srv.URL).Stats(context.Background(), inbox.PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, inbox.Stats{Total: 45, Delivered: 40, Failed: 5}, stats)
}

func TestNon2xxIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.GetConfig(context.Background())
	assert.ErrorIs(t, err, ErrTransport)

	_, err = client.SentMessages(context.Background(), inbox.PeriodToday)
	assert.ErrorIs(t, err, ErrTransport)

	_, err = client.Stats(context.Background(), inbox.PeriodToday)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestConnectionRefusedIsTransportFailure(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := New(addr).GetConfig(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
}

func TestMalformedResponseIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Stats(context.Background(), inbox.PeriodToday)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCSRFHeaderOmittedWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(CSRFHeader), "CSRF header must be absent when no token is configured")
		w.Write([]byte(`{"success":true,"data":null}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetConfig(context.Background())
	require.NoError(t, err)
}
