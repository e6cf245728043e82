// internal/llm/gemini.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
)

// GeminiClient is the hosted model backend, backed by Vertex AI via gollem.
type GeminiClient struct {
	client gollem.LLMClient
}

// NewGemini creates the hosted backend for the given GCP project/location and
// model name.
func NewGemini(ctx context.Context, projectID, location, modelName string) (*GeminiClient, error) {
	client, err := gemini.New(ctx, projectID, location, gemini.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// Complete issues a single completion call. Each call uses a fresh session;
// there is no conversation memory.
func (c *GeminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	session, err := c.client.NewSession(ctx, gollem.WithSessionSystemPrompt(system))
	if err != nil {
		return "", fmt.Errorf("failed to create model session: %w", err)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(user))
	if err != nil {
		return "", fmt.Errorf("model completion failed: %w", err)
	}
	if resp == nil || len(resp.Texts) == 0 {
		return "", errors.New("empty response from model")
	}

	return strings.TrimSpace(strings.Join(resp.Texts, "\n")), nil
}
