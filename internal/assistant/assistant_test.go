// internal/assistant/assistant_test.go
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github-ai-assistant/internal/github"
	"github-ai-assistant/internal/model"
)

// MockLLM is a mock of the llm.Client interface.
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupGitHub wires a github.Client to an httptest server and records the
// request paths it receives.
func setupGitHub(t *testing.T, handler http.HandlerFunc, paths *[]string) *github.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*paths = append(*paths, r.URL.Path)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := github.NewClient("", 5*time.Second, model.DateLayoutLong, testLogger())
	require.NoError(t, client.SetAPIBaseURL(server.URL))
	return client
}

func TestAssistant_Chat_ListCommits(t *testing.T) {
	ctx := context.Background()
	var paths []string
	gh := setupGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `[
			{"sha": "abc", "commit": {"message": "first", "author": {"name": "Jane", "date": "2025-02-25T04:00:47Z"}}},
			{"sha": "def", "commit": {"message": "second", "author": {"name": "Joe", "date": "2025-02-26T09:15:00Z"}}}
		]`)
	}, &paths)

	mockLLM := new(MockLLM)
	// First call classifies, second composes from the normalized payload.
	mockLLM.On("Complete", ctx, mock.Anything, mock.Anything).Return("list_commits", nil).Once()
	mockLLM.On("Complete", ctx, composeInstruction, mock.MatchedBy(func(user string) bool {
		return strings.Contains(user, "list the last 5 commits") &&
			strings.Contains(user, `"commit_count": 2`) &&
			strings.Contains(user, "25 Feb 2025")
	})).Return("The repository has two recent commits by Jane and Joe.", nil).Once()

	answer, err := New(gh, mockLLM, "test", "repo", testLogger()).Chat(ctx, "list the last 5 commits")

	require.NoError(t, err)
	assert.NotEmpty(t, answer)
	assert.Equal(t, []string{"/repos/test/repo/commits"}, paths)
	mockLLM.AssertExpectations(t)
}

func TestAssistant_Chat_InvalidActionShortCircuits(t *testing.T) {
	ctx := context.Background()
	var paths []string
	gh := setupGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no GitHub request should be made for an invalid action")
	}, &paths)

	mockLLM := new(MockLLM)
	mockLLM.On("Complete", ctx, mock.Anything, mock.Anything).Return("order_a_pizza", nil).Once()

	answer, err := New(gh, mockLLM, "test", "repo", testLogger()).Chat(ctx, "order me a pizza")

	require.NoError(t, err)
	assert.Equal(t, invalidActionReply, answer)
	assert.Empty(t, paths)
	mockLLM.AssertNumberOfCalls(t, "Complete", 1)
}

func TestAssistant_Chat_IssueNumberReachesTheFetch(t *testing.T) {
	ctx := context.Background()
	var paths []string
	gh := setupGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"number": 38, "title": "Flaky test", "state": "open"}`)
	}, &paths)

	mockLLM := new(MockLLM)
	mockLLM.On("Complete", ctx, mock.Anything, mock.Anything).Return("list_issue_details", nil).Once()
	mockLLM.On("Complete", ctx, composeInstruction, mock.Anything).Return("Issue 38 is about a flaky test.", nil).Once()

	_, err := New(gh, mockLLM, "test", "repo", testLogger()).Chat(ctx, "show me issue #38")

	require.NoError(t, err)
	assert.Equal(t, []string{"/repos/test/repo/issues/38"}, paths)
}

func TestAssistant_Chat_UpstreamErrorStillComposes(t *testing.T) {
	ctx := context.Background()
	var paths []string
	gh := setupGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintln(w, `{"message": "Not Found"}`)
	}, &paths)

	mockLLM := new(MockLLM)
	mockLLM.On("Complete", ctx, mock.Anything, mock.Anything).Return("list_issue_details", nil).Once()
	// The upstream failure reaches the composer as data.
	mockLLM.On("Complete", ctx, composeInstruction, mock.MatchedBy(func(user string) bool {
		return strings.Contains(user, "Not Found")
	})).Return("Issue 9999 could not be found on GitHub.", nil).Once()

	answer, err := New(gh, mockLLM, "test", "repo", testLogger()).Chat(ctx, "show me issue 9999")

	require.NoError(t, err)
	assert.NotEmpty(t, answer)
	mockLLM.AssertExpectations(t)
}

func TestAssistant_Chat_ComposeFailurePropagates(t *testing.T) {
	ctx := context.Background()
	var paths []string
	gh := setupGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `[]`)
	}, &paths)

	mockLLM := new(MockLLM)
	mockLLM.On("Complete", ctx, mock.Anything, mock.Anything).Return("list_commits", nil).Once()
	mockLLM.On("Complete", ctx, composeInstruction, mock.Anything).Return("", assert.AnError).Once()

	_, err := New(gh, mockLLM, "test", "repo", testLogger()).Chat(ctx, "any commits?")

	assert.Error(t, err)
}

func TestFactory_BackendSelection(t *testing.T) {
	ctx := context.Background()
	var paths []string
	gh := setupGitHub(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `[]`)
	}, &paths)

	newBackend := func() *MockLLM {
		m := new(MockLLM)
		m.On("Complete", ctx, mock.Anything, mock.Anything).Return("list_commits", nil).Once()
		m.On("Complete", ctx, mock.Anything, mock.Anything).Return("No commits found.", nil).Once()
		return m
	}

	t.Run("gemini and empty select the hosted backend", func(t *testing.T) {
		for _, backend := range []string{"", "gemini", "Gemini"} {
			hosted, local := newBackend(), new(MockLLM)
			factory := NewFactory(gh, hosted, local, testLogger())

			_, err := factory.Chat(ctx, "test", "repo", backend, "list commits")

			require.NoError(t, err)
			hosted.AssertNumberOfCalls(t, "Complete", 2)
			local.AssertNumberOfCalls(t, "Complete", 0)
		}
	})

	t.Run("anything else selects the local backend", func(t *testing.T) {
		hosted, local := new(MockLLM), newBackend()
		factory := NewFactory(gh, hosted, local, testLogger())

		_, err := factory.Chat(ctx, "test", "repo", "llama", "list commits")

		require.NoError(t, err)
		local.AssertNumberOfCalls(t, "Complete", 2)
		hosted.AssertNumberOfCalls(t, "Complete", 0)
	})
}
