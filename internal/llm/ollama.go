// internal/llm/ollama.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaClient is the local model backend, talking to an Ollama server.
type OllamaClient struct {
	client *api.Client
	model  string
}

// NewOllama creates the local backend. An empty host falls back to the
// OLLAMA_HOST environment convention (default http://127.0.0.1:11434).
func NewOllama(host, modelName string) (*OllamaClient, error) {
	if host == "" {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return &OllamaClient{client: client, model: modelName}, nil
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama host %q: %w", host, err)
	}
	return &OllamaClient{
		client: api.NewClient(base, http.DefaultClient),
		model:  modelName,
	}, nil
}

// Complete issues a single non-streaming chat completion. Temperature is
// pinned to zero so classification output stays deterministic.
func (c *OllamaClient) Complete(ctx context.Context, system, user string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream:  &stream,
		Options: map[string]any{"temperature": 0},
	}

	var out strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		out.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("model completion failed: %w", err)
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
