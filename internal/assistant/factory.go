// internal/assistant/factory.go
package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github-ai-assistant/internal/github"
	"github-ai-assistant/internal/llm"
)

// Backend names accepted from the API surface.
const (
	BackendGemini = "gemini"
	BackendLlama  = "llama"
)

// Factory builds a per-request Assistant from process-wide dependencies. The
// model backend is chosen at construction time; the pipeline itself never
// switches backends mid-query.
type Factory struct {
	gh     *github.Client
	hosted llm.Client
	local  llm.Client
	logger *slog.Logger
}

// NewFactory creates a Factory holding the shared GitHub client and the two
// model backends.
func NewFactory(gh *github.Client, hosted, local llm.Client, logger *slog.Logger) *Factory {
	return &Factory{
		gh:     gh,
		hosted: hosted,
		local:  local,
		logger: logger,
	}
}

// Chat runs one query against owner/name with the requested backend. An
// empty or "gemini" backend selects the hosted model; anything else the
// local one.
func (f *Factory) Chat(ctx context.Context, owner, name, backend, query string) (string, error) {
	llmClient := f.local
	if backend == "" || strings.EqualFold(backend, BackendGemini) {
		llmClient = f.hosted
	}
	return New(f.gh, llmClient, owner, name, f.logger).Chat(ctx, query)
}
