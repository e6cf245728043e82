// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github-ai-assistant/internal/llm"
	"github-ai-assistant/internal/model"
)

// Router classifies a free-text query into one member of the closed action
// set with a single model-completion call.
type Router struct {
	llm    llm.Client
	logger *slog.Logger
}

// New creates a Router using the given model client.
func New(llmClient llm.Client, logger *slog.Logger) *Router {
	return &Router{
		llm:    llmClient,
		logger: logger,
	}
}

// classifyInstruction is the fixed system instruction for action routing. The
// action list is appended at construction of the prompt so the recognized set
// has a single source of truth.
const classifyInstruction = "You are an AI that maps user queries to GitHub API actions. " +
	"Current actions: %s. " +
	"Use 'list_issue_details' only if the query asks for details about a specific issue, such as 'issue #38'. " +
	"Use 'list_issues' if the query asks for multiple issues, such as 'last 5 opened issues'. " +
	"Use 'list_open_issues' or 'list_closed_issues' only if the query restricts issues to one state. " +
	"Return only the action name as output."

func classifyPrompt() string {
	names := make([]string, 0, len(model.Actions()))
	for _, a := range model.Actions() {
		names = append(names, string(a))
	}
	return fmt.Sprintf(classifyInstruction, strings.Join(names, ", "))
}

// DecideAction asks the model which action the query maps to. The response is
// trimmed and compared case-sensitively against the recognized set; anything
// else yields model.ActionInvalid. No re-prompting on a non-matching answer.
func (r *Router) DecideAction(ctx context.Context, query string) (model.Action, error) {
	user := fmt.Sprintf("User Query: %s\nWhich action should I take?", query)

	out, err := r.llm.Complete(ctx, classifyPrompt(), user)
	if err != nil {
		return model.ActionInvalid, fmt.Errorf("failed to classify query: %w", err)
	}

	action := model.Action(strings.TrimSpace(out))
	if !action.Recognized() {
		r.logger.Warn("Model returned unrecognized action", "output", out)
		return model.ActionInvalid, nil
	}

	r.logger.Debug("Classified query", "action", action)
	return action, nil
}

// ExtractIssueNumber scans the query's whitespace-delimited tokens for the
// first one that is a '#'-prefixed integer or a bare integer and returns it
// as the issue number. First matching token wins; queries with unrelated
// numbers are resolved by that rule alone.
func ExtractIssueNumber(query string) (int, bool) {
	for _, word := range strings.Fields(query) {
		if rest, ok := strings.CutPrefix(word, "#"); ok {
			if n, err := strconv.Atoi(rest); err == nil && n > 0 {
				return n, true
			}
			continue
		}
		if n, err := strconv.Atoi(word); err == nil && n > 0 {
			return n, true
		}
	}
	return 0, false
}
