package genai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stpaulnss/auditeasy/internal/adapters/genai"
	"github.com/stpaulnss/auditeasy/internal/apperrors"
)

func TestClient_GenerateContent(t *testing.T) {
	t.Run("concatenates candidate parts", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Compliance "},{"text":"score: 92"}]}}]}`))
		}))
		defer server.Close()

		client := genai.NewClient(server.URL, "test-key", "gemini-3-pro-preview", 5*time.Second)
		text, err := client.GenerateContent(context.Background(), "audit this ledger")
		require.NoError(t, err)

		assert.Equal(t, "Compliance score: 92", text)
		assert.Equal(t, "/models/gemini-3-pro-preview:generateContent", gotPath)
		assert.Equal(t, "test-key", gotKey)
		assert.Contains(t, gotBody, "contents")
	})

	t.Run("403 and 404 map to the auth sentinel", func(t *testing.T) {
		for _, status := range []int{http.StatusForbidden, http.StatusNotFound} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			client := genai.NewClient(server.URL, "bad-key", "gemini-3-pro-preview", 5*time.Second)
			_, err := client.GenerateContent(context.Background(), "prompt")
			assert.ErrorIs(t, err, apperrors.ErrAuthRequired, "status %d", status)

			server.Close()
		}
	})

	t.Run("server errors are not auth errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := genai.NewClient(server.URL, "key", "gemini-3-pro-preview", 5*time.Second)
		_, err := client.GenerateContent(context.Background(), "prompt")
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrAuthRequired)
	})

	t.Run("empty candidate list is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client := genai.NewClient(server.URL, "key", "gemini-3-pro-preview", 5*time.Second)
		_, err := client.GenerateContent(context.Background(), "prompt")
		assert.ErrorContains(t, err, "no candidates")
	})
}
