// internal/assistant/assistant.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github-ai-assistant/internal/github"
	"github-ai-assistant/internal/llm"
	"github-ai-assistant/internal/model"
	"github-ai-assistant/internal/router"
)

// invalidActionReply is what the caller sees when the router cannot map the
// query to a recognized action. No fetch or compose call happens in that case.
const invalidActionReply = "Invalid action"

// composeInstruction is the fixed system instruction for the answering call.
const composeInstruction = "You are an AI assistant that interprets GitHub data and answers user queries accurately."

// Assistant runs the full pipeline for one target repository: classify the
// query, fetch and normalize the matching GitHub data, and compose a prose
// answer. Strictly sequential; each step consumes the previous step's output.
type Assistant struct {
	gh     *github.Client
	llm    llm.Client
	router *router.Router
	owner  string
	name   string
	logger *slog.Logger
}

// New creates an Assistant bound to one repository and one model backend.
func New(gh *github.Client, llmClient llm.Client, owner, name string, logger *slog.Logger) *Assistant {
	return &Assistant{
		gh:     gh,
		llm:    llmClient,
		router: router.New(llmClient, logger),
		owner:  owner,
		name:   name,
		logger: logger.With("owner", owner, "repo", name),
	}
}

// Chat answers a single free-text question about the repository.
func (a *Assistant) Chat(ctx context.Context, query string) (string, error) {
	action, err := a.router.DecideAction(ctx, query)
	if err != nil {
		return "", err
	}
	if action == model.ActionInvalid {
		a.logger.Info("Query did not map to a recognized action", "query", query)
		return invalidActionReply, nil
	}

	issueNumber := 0
	if action == model.ActionListIssueDetails {
		if n, ok := router.ExtractIssueNumber(query); ok {
			issueNumber = n
		}
	}

	a.logger.Info("Fetching GitHub data", "action", action, "issue_number", issueNumber)
	data, err := a.gh.Fetch(ctx, a.owner, a.name, action, issueNumber)
	if err != nil {
		return "", fmt.Errorf("failed to fetch data for action %q: %w", action, err)
	}

	// Upstream errors are composed like any other data; the model phrases
	// the failure for the user.
	return a.compose(ctx, query, data)
}

// compose renders the data and asks the model for the final answer.
func (a *Assistant) compose(ctx context.Context, query string, data any) (string, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render data for composing: %w", err)
	}
	a.logger.Debug("Composing answer", "payload", string(payload))

	user := fmt.Sprintf("User Query: %s\nGitHub Data:\n%s\nProvide the most relevant answer.", query, payload)
	answer, err := a.llm.Complete(ctx, composeInstruction, user)
	if err != nil {
		return "", fmt.Errorf("failed to compose answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
