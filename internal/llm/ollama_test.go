// internal/llm/ollama_test.go
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaClient_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a non-streaming chat request and returns the reply", func(t *testing.T) {
		var gotPath string
		var gotReq map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			fmt.Fprintln(w, `{"model": "llama3.1", "message": {"role": "assistant", "content": "list_commits"}, "done": true}`)
		}))
		defer server.Close()

		client, err := NewOllama(server.URL, "llama3.1")
		require.NoError(t, err)

		out, err := client.Complete(ctx, "classify", "which action?")

		require.NoError(t, err)
		assert.Equal(t, "list_commits", out)
		assert.Equal(t, "/api/chat", gotPath)
		assert.Equal(t, "llama3.1", gotReq["model"])
		assert.Equal(t, false, gotReq["stream"])
	})

	t.Run("an empty reply is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintln(w, `{"model": "llama3.1", "message": {"role": "assistant", "content": ""}, "done": true}`)
		}))
		defer server.Close()

		client, err := NewOllama(server.URL, "llama3.1")
		require.NoError(t, err)

		_, err = client.Complete(ctx, "classify", "which action?")

		assert.ErrorContains(t, err, "empty response")
	})

	t.Run("a server failure propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintln(w, `{"error": "model not loaded"}`)
		}))
		defer server.Close()

		client, err := NewOllama(server.URL, "llama3.1")
		require.NoError(t, err)

		_, err = client.Complete(ctx, "classify", "which action?")

		assert.ErrorContains(t, err, "model completion failed")
	})
}
