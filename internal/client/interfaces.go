package client

import "context"

// Issue represents a created GitHub issue
type Issue struct {
	ID     int64  `json:"id" yaml:"id"`
	Number int    `json:"number" yaml:"number"`
	Title  string `json:"title" yaml:"title"`
	WebURL string `json:"html_url" yaml:"url"`
}

// Milestone represents a repository milestone
type Milestone struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// IssueRequest carries the fields sent when creating an issue.
// A nil Milestone leaves the issue without one.
type IssueRequest struct {
	Title     string
	Body      string
	Labels    []string
	Milestone *int
}

// IssueTracker defines the interface for remote issue management
type IssueTracker interface {
	// ListMilestones returns the first page of milestones for the configured repository
	ListMilestones(ctx context.Context) ([]Milestone, error)

	// CreateIssue creates a new issue and returns issue details
	CreateIssue(ctx context.Context, req IssueRequest) (*Issue, error)
}
