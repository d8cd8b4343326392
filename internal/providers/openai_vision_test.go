package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatCompletionResponse(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     100,
			"completion_tokens": 50,
			"total_tokens":      150,
		},
	}
}

func TestOpenAIAnalyzerAnalyze(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(chatCompletionResponse(`{"header":"Ch 1","footer":null,"body":"hello world","page":"3"}`))
		}))
		defer srv.Close()

		analyzer := NewOpenAIAnalyzer(VisionConfig{APIKey: "test-key", BaseURL: srv.URL})

		pc, err := analyzer.Analyze(context.Background(), []byte("fake-image"), "image/png", "scan-001.png")

		require.NoError(t, err)
		assert.Equal(t, "/chat/completions", gotPath)
		require.NotNil(t, pc.Header)
		assert.Equal(t, "Ch 1", *pc.Header)
		assert.Nil(t, pc.Footer)
		assert.Equal(t, "hello world", pc.Body)
		require.NotNil(t, pc.Page)
		assert.Equal(t, "3", *pc.Page)
		assert.Equal(t, "scan-001.png", pc.Filename)
	})

	t.Run("fenced output still parses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(chatCompletionResponse("```json\n{\"body\":\"fenced body\"}\n```"))
		}))
		defer srv.Close()

		analyzer := NewOpenAIAnalyzer(VisionConfig{APIKey: "test-key", BaseURL: srv.URL})

		pc, err := analyzer.Analyze(context.Background(), []byte("fake-image"), "image/jpeg", "page.jpg")

		require.NoError(t, err)
		assert.Equal(t, "fenced body", pc.Body)
	})

	t.Run("malformed model output", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(chatCompletionResponse("not json at all"))
		}))
		defer srv.Close()

		analyzer := NewOpenAIAnalyzer(VisionConfig{APIKey: "test-key", BaseURL: srv.URL})

		_, err := analyzer.Analyze(context.Background(), []byte("fake-image"), "image/png", "page.png")

		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("API error surfaces status and message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "rate limit exceeded", "type": "rate_limit_error"},
			})
		}))
		defer srv.Close()

		analyzer := NewOpenAIAnalyzer(VisionConfig{APIKey: "test-key", BaseURL: srv.URL})

		_, err := analyzer.Analyze(context.Background(), []byte("fake-image"), "image/png", "page.png")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("empty image rejected without a request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		}))
		defer srv.Close()

		analyzer := NewOpenAIAnalyzer(VisionConfig{APIKey: "test-key", BaseURL: srv.URL})

		_, err := analyzer.Analyze(context.Background(), nil, "image/png", "page.png")

		assert.Error(t, err)
	})
}
