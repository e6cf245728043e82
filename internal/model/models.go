// internal/model/models.go
package model

import "fmt"

// Action identifies a GitHub data-retrieval operation. The set is closed:
// the router only ever produces one of the constants below (or ActionInvalid).
type Action string

const (
	ActionRepoInfo         Action = "repo_info"
	ActionListFiles        Action = "list_files"
	ActionListIssues       Action = "list_issues"
	ActionListOpenIssues   Action = "list_open_issues"
	ActionListClosedIssues Action = "list_closed_issues"
	ActionListIssueDetails Action = "list_issue_details"
	ActionListPRs          Action = "list_prs"
	ActionListCommits      Action = "list_commits"

	// ActionInvalid is the sentinel for a classification that matched no
	// recognized action. It short-circuits the pipeline before any fetch.
	ActionInvalid Action = "invalid_action"
)

// Actions returns the recognized action set in a stable order.
func Actions() []Action {
	return []Action{
		ActionRepoInfo,
		ActionListFiles,
		ActionListIssues,
		ActionListOpenIssues,
		ActionListClosedIssues,
		ActionListIssueDetails,
		ActionListPRs,
		ActionListCommits,
	}
}

// Recognized reports whether a is a member of the closed action set.
// ActionInvalid is not recognized.
func (a Action) Recognized() bool {
	for _, known := range Actions() {
		if a == known {
			return true
		}
	}
	return false
}

// Default strings used when an upstream field is absent. Normalization fills
// these in rather than failing.
const (
	Unknown       = "Unknown"
	NoTitle       = "No title provided"
	NoDescription = "No description provided"
	NoMessage     = "No message provided"
	NoURL         = "No URL available"
	NoComment     = "No comment content"
)

// Timestamp is an upstream ISO-8601 timestamp split into separate date and
// time strings for display. Absent or unparsable input yields "Unknown" for
// both parts.
type Timestamp struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// CommitRecord is one normalized commit. CommitNum is 1-based and reflects
// upstream response order; it is a display aid, not a stable identifier.
type CommitRecord struct {
	CommitNum int       `json:"commit_num"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	SHA       string    `json:"sha"`
	Message   string    `json:"message"`
	CreatedAt Timestamp `json:"created_at"`
	URL       string    `json:"url"`
}

// CommitList is the normalized shape for the commit listing action.
type CommitList struct {
	CommitCount int            `json:"commit_count"`
	Commits     []CommitRecord `json:"commits"`
}

// IssueSummary is one normalized issue in a listing. Title inlines the issue
// number and URL so the composer sees them together.
type IssueSummary struct {
	Creator   string    `json:"issue_creator"`
	Assignee  string    `json:"assignee"`
	Title     string    `json:"title"`
	CreatedAt Timestamp `json:"created_at"`
	ClosedAt  Timestamp `json:"closed_at"`
	State     string    `json:"state"`
}

// IssueList is the normalized shape for the issue listing actions.
type IssueList struct {
	IssueCount int            `json:"issue_count"`
	Issues     []IssueSummary `json:"issues"`
}

// IssueDetail is the normalized shape for a single issue, including its body
// and the comment bodies fetched via the secondary request.
type IssueDetail struct {
	Number      int       `json:"issue_number"`
	Creator     string    `json:"issue_creator"`
	Assignee    string    `json:"assignee"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Comments    []string  `json:"comments"`
	State       string    `json:"state"`
	CreatedAt   Timestamp `json:"created_at"`
	ClosedAt    Timestamp `json:"closed_at"`
	URL         string    `json:"url"`
}

// PullRecord is one normalized pull request.
type PullRecord struct {
	PRNum     int       `json:"pr_num"`
	Author    string    `json:"author"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	CreatedAt Timestamp `json:"created_at"`
	URL       string    `json:"url"`
	Comments  int       `json:"comments"`
	Commits   int       `json:"commits"`
	Additions int       `json:"additions"`
	Deletions int       `json:"deletions"`
	Merged    bool      `json:"merged"`
}

// PullList is the normalized shape for the pull request listing action.
type PullList struct {
	PRCount int          `json:"pr_count"`
	PRs     []PullRecord `json:"prs"`
}

// UpstreamError carries a failed GitHub response as a value. It flows into
// the answer composer as data; the pipeline never retries it.
type UpstreamError struct {
	Status int    `json:"status,omitempty"`
	Body   string `json:"error"`
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("github request failed with status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("github request failed: %s", e.Body)
}
