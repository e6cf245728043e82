// internal/github/client.go
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github-ai-assistant/internal/model"
)

// One page at the API maximum; no pagination beyond it.
const perPage = 100

// Client is a wrapper around the go-github client that fetches per-action
// data and normalizes it into the compact record shapes.
type Client struct {
	gh         *github.Client
	logger     *slog.Logger
	dateLayout string
}

// NewClient creates and configures a new Client instance.
// The provided token is used to create an authenticated http.Client with a
// bounded timeout; a timeout surfaces as an error value, not a hang.
func NewClient(token string, timeout time.Duration, dateLayout string, logger *slog.Logger) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout

	return &Client{
		gh:         github.NewClient(tc),
		logger:     logger,
		dateLayout: dateLayout,
	}
}

// SetAPIBaseURL points the client at a different API root, e.g. a GitHub
// Enterprise instance or a test server.
func (c *Client) SetAPIBaseURL(rawURL string) error {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", rawURL, err)
	}
	c.gh.BaseURL = base
	return nil
}

// upstreamValue converts a failed GitHub call into an UpstreamError value.
// The pipeline treats it as terminal data for the composer, never a retry.
func upstreamValue(err error) *model.UpstreamError {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		status := 0
		if ghErr.Response != nil {
			status = ghErr.Response.StatusCode
		}
		return &model.UpstreamError{Status: status, Body: ghErr.Message}
	}
	return &model.UpstreamError{Body: err.Error()}
}
