// internal/github/normalize.go
package github

import (
	"fmt"
	"strconv"

	"github.com/google/go-github/v62/github"

	"github-ai-assistant/internal/model"
)

// The normalizers translate go-github payloads into the compact record
// shapes. Every optional upstream field gets a default; normalization never
// fails on missing data. Sequence numbers are 1-based in upstream response
// order, with no re-sorting.

func (c *Client) normalizeCommits(commits []*github.RepositoryCommit) model.CommitList {
	records := make([]model.CommitRecord, 0, len(commits))
	for i, commit := range commits {
		author := commit.GetCommit().GetAuthor()
		records = append(records, model.CommitRecord{
			CommitNum: i + 1,
			Author:    orUnknown(author.GetName()),
			Email:     orUnknown(author.GetEmail()),
			SHA:       orUnknown(commit.GetSHA()),
			Message:   orDefault(commit.GetCommit().GetMessage(), model.NoMessage),
			CreatedAt: c.splitTime(author.GetDate()),
			URL:       orDefault(commit.GetHTMLURL(), model.NoURL),
		})
	}
	return model.CommitList{CommitCount: len(records), Commits: records}
}

func (c *Client) normalizeIssues(issues []*github.Issue) model.IssueList {
	records := make([]model.IssueSummary, 0, len(issues))
	for _, issue := range issues {
		title := fmt.Sprintf("#%s: %s - %s",
			numberText(issue.GetNumber()),
			orDefault(issue.GetTitle(), model.NoTitle),
			orDefault(issue.GetHTMLURL(), model.NoURL),
		)
		records = append(records, model.IssueSummary{
			Creator:   loginOrUnknown(issue.User),
			Assignee:  loginOrUnknown(issue.Assignee),
			Title:     title,
			CreatedAt: c.splitTime(issue.GetCreatedAt()),
			ClosedAt:  c.splitTime(issue.GetClosedAt()),
			State:     orUnknown(issue.GetState()),
		})
	}
	return model.IssueList{IssueCount: len(records), Issues: records}
}

func (c *Client) normalizeIssueDetail(issue *github.Issue) *model.IssueDetail {
	return &model.IssueDetail{
		Number:      issue.GetNumber(),
		Creator:     loginOrUnknown(issue.User),
		Assignee:    loginOrUnknown(issue.Assignee),
		Title:       orDefault(issue.GetTitle(), model.NoTitle),
		Description: orDefault(issue.GetBody(), model.NoDescription),
		Comments:    []string{},
		State:       orUnknown(issue.GetState()),
		CreatedAt:   c.splitTime(issue.GetCreatedAt()),
		ClosedAt:    c.splitTime(issue.GetClosedAt()),
		URL:         orDefault(issue.GetHTMLURL(), model.NoURL),
	}
}

func (c *Client) normalizePulls(prs []*github.PullRequest) model.PullList {
	records := make([]model.PullRecord, 0, len(prs))
	for i, pr := range prs {
		records = append(records, model.PullRecord{
			PRNum:     i + 1,
			Author:    loginOrUnknown(pr.User),
			Number:    pr.GetNumber(),
			Title:     orDefault(pr.GetTitle(), model.NoTitle),
			State:     orUnknown(pr.GetState()),
			CreatedAt: c.splitTime(pr.GetCreatedAt()),
			URL:       orDefault(pr.GetHTMLURL(), model.NoURL),
			Comments:  pr.GetComments(),
			Commits:   pr.GetCommits(),
			Additions: pr.GetAdditions(),
			Deletions: pr.GetDeletions(),
			// A merge timestamp is the only reliable merged signal in the
			// list payload.
			Merged: pr.MergedAt != nil,
		})
	}
	return model.PullList{PRCount: len(records), PRs: records}
}

func (c *Client) splitTime(ts github.Timestamp) model.Timestamp {
	return model.SplitTimestamp(model.FormatUpstreamTime(ts.Time), c.dateLayout)
}

func loginOrUnknown(user *github.User) string {
	if user == nil {
		return model.Unknown
	}
	return orUnknown(user.GetLogin())
}

func numberText(n int) string {
	if n == 0 {
		return model.Unknown
	}
	return strconv.Itoa(n)
}

func orUnknown(s string) string {
	return orDefault(s, model.Unknown)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
