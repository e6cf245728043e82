// internal/github/fetch.go
package github

import (
	"context"

	"github.com/google/go-github/v62/github"

	errs "github-ai-assistant/internal/errors"
	"github-ai-assistant/internal/model"
)

// Fetch performs the GitHub call for the given action against owner/name and
// returns the normalized record. Upstream failures (non-2xx, timeouts) come
// back as a *model.UpstreamError value with a nil error; the error return is
// reserved for an unrecognized action, which the router filters out.
//
// issueNumber is only consulted for list_issue_details; a non-positive value
// means no number was extracted from the query, in which case the call falls
// back to the issue listing (the bare issues endpoint returns the list).
func (c *Client) Fetch(ctx context.Context, owner, name string, action model.Action, issueNumber int) (any, error) {
	switch action {
	case model.ActionRepoInfo:
		return c.getRepoInfo(ctx, owner, name)
	case model.ActionListFiles:
		return c.listFiles(ctx, owner, name)
	case model.ActionListIssues:
		return c.listIssues(ctx, owner, name, "all")
	case model.ActionListOpenIssues:
		return c.listIssues(ctx, owner, name, "open")
	case model.ActionListClosedIssues:
		return c.listIssues(ctx, owner, name, "closed")
	case model.ActionListIssueDetails:
		if issueNumber <= 0 {
			return c.listIssues(ctx, owner, name, "all")
		}
		return c.getIssueDetails(ctx, owner, name, issueNumber)
	case model.ActionListPRs:
		return c.listPullRequests(ctx, owner, name)
	case model.ActionListCommits:
		return c.listCommits(ctx, owner, name)
	default:
		return nil, &errs.ErrUnknownAction{Action: string(action)}
	}
}

// getRepoInfo passes the repository payload through with no normalization.
func (c *Client) getRepoInfo(ctx context.Context, owner, name string) (any, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return upstreamValue(err), nil
	}
	return repo, nil
}

// listFiles passes the root directory listing through with no normalization.
func (c *Client) listFiles(ctx context.Context, owner, name string) (any, error) {
	_, contents, _, err := c.gh.Repositories.GetContents(ctx, owner, name, "", nil)
	if err != nil {
		return upstreamValue(err), nil
	}
	return contents, nil
}

func (c *Client) listIssues(ctx context.Context, owner, name, state string) (any, error) {
	opts := &github.IssueListByRepoOptions{
		State:       state,
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	issues, _, err := c.gh.Issues.ListByRepo(ctx, owner, name, opts)
	if err != nil {
		return upstreamValue(err), nil
	}
	return c.normalizeIssues(issues), nil
}

func (c *Client) listPullRequests(ctx context.Context, owner, name string) (any, error) {
	opts := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	prs, _, err := c.gh.PullRequests.List(ctx, owner, name, opts)
	if err != nil {
		return upstreamValue(err), nil
	}
	return c.normalizePulls(prs), nil
}

func (c *Client) listCommits(ctx context.Context, owner, name string) (any, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	commits, _, err := c.gh.Repositories.ListCommits(ctx, owner, name, opts)
	if err != nil {
		return upstreamValue(err), nil
	}
	return c.normalizeCommits(commits), nil
}

// getIssueDetails fetches a single issue plus its comment bodies. A failed
// comments fetch degrades to an empty comment list; it never fails the whole
// operation.
func (c *Client) getIssueDetails(ctx context.Context, owner, name string, number int) (any, error) {
	issue, _, err := c.gh.Issues.Get(ctx, owner, name, number)
	if err != nil {
		return upstreamValue(err), nil
	}

	detail := c.normalizeIssueDetail(issue)
	detail.Comments = c.fetchCommentBodies(ctx, owner, name, number, issue.GetComments())
	return detail, nil
}

func (c *Client) fetchCommentBodies(ctx context.Context, owner, name string, number, count int) []string {
	bodies := make([]string, 0, count)
	if count == 0 {
		return bodies
	}

	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	comments, _, err := c.gh.Issues.ListComments(ctx, owner, name, number, opts)
	if err != nil {
		c.logger.Warn("Failed to fetch issue comments", "owner", owner, "repo", name, "issue", number, "error", err)
		return bodies
	}

	for _, comment := range comments {
		bodies = append(bodies, orDefault(comment.GetBody(), model.NoComment))
	}
	return bodies
}
