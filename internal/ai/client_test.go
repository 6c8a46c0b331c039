package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GenerateText(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "models/gemini-1.5-flash:generateContent")
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "career counselor")

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "generated text"}}}},
			},
		})
	})

	client := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, Model: "gemini-1.5-flash"})

	text, err := client.GenerateText(context.Background(), BuildRoadmapPrompt(Profile{}))
	require.NoError(t, err)
	assert.Equal(t, "generated text", text)
}

func TestClient_GenerateText_NoAPIKey(t *testing.T) {
	client := NewClient(Config{Model: "gemini-1.5-flash"})

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestClient_GenerateText_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	client := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, Model: "m"})

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestClient_GenerateText_EmptyCandidates(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	client := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, Model: "m"})

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestClient_GenerateText_Timeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	client := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, Model: "m", Timeout: 20 * time.Millisecond})

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
