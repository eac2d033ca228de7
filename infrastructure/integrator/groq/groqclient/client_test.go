package groqclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/banarsibot-api/internal/config"
)

type chatRequestBody struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{Groq: config.Groq{APIKey: "gsk_test", BaseURL: srv.URL + "/"}})
}

func TestGroqClient_Complete(t *testing.T) {
	var received chatRequestBody
	var auth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1760000000,
			"model": "llama3-8b-8192",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Namaste ji! Katan silk bahut sundar hai."}}]
		}`))
	})

	got, err := client.Complete(context.Background(), ChatRequest{
		Model:        "llama3-8b-8192",
		SystemPrompt: "You are BanarsiBot",
		UserMessage:  "Katan kya hai?",
		Temperature:  0.3,
	})
	require.NoError(t, err)

	assert.Equal(t, "Namaste ji! Katan silk bahut sundar hai.", got)
	assert.Equal(t, "Bearer gsk_test", auth)
	assert.Equal(t, "llama3-8b-8192", received.Model)
	assert.InDelta(t, 0.3, received.Temperature, 1e-9)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, "system", received.Messages[0].Role)
	assert.Equal(t, "You are BanarsiBot", received.Messages[0].Content)
	assert.Equal(t, "user", received.Messages[1].Role)
	assert.Equal(t, "Katan kya hai?", received.Messages[1].Content)
}

func TestGroqClient_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	})

	_, err := client.Complete(context.Background(), ChatRequest{Model: "m", UserMessage: "hi"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGroqClient_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})

	_, err := client.Complete(context.Background(), ChatRequest{Model: "m", UserMessage: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groq: chat completion")
	assert.Contains(t, err.Error(), "401")
}
