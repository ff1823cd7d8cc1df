package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumina-workers/internal/common/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGeminiClient(url, key string) *GeminiClient {
	return NewGeminiClient(config.GeminiConfig{
		BaseURL: url,
		APIKey:  key,
		Model:   "gemini-2.5-flash",
		Timeout: 2000,
	})
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"a\":"},{"text":"1}"}]}}]}`))
	}))
	defer srv.Close()

	text, err := createTestGeminiClient(srv.URL, "secret").Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}

func TestGeminiClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		errMsg string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"bad"}`, "status 400"},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, "no content generated"},
		{"garbage", http.StatusOK, `<html>`, "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := createTestGeminiClient(srv.URL, "secret").Generate(context.Background(), "hello")
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestGeminiClient_MissingKey(t *testing.T) {
	_, err := createTestGeminiClient("http://unused", "").Generate(context.Background(), "hello")
	assert.ErrorContains(t, err, "api key")
}
