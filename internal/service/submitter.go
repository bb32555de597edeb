package service

import (
	"context"
	"fmt"
	"log/slog"

	"md-issues/internal/client"
	"md-issues/internal/record"
)

// SubmitterImpl implements the Submitter interface against an IssueTracker
type SubmitterImpl struct {
	issueTracker client.IssueTracker
}

// NewSubmitter creates a new submitter instance
func NewSubmitter(issueTracker client.IssueTracker) *SubmitterImpl {
	return &SubmitterImpl{
		issueTracker: issueTracker,
	}
}

// ResolveMilestone looks up a milestone number by exact, case-sensitive title.
// Every call lists milestones again; results are not cached.
func (s *SubmitterImpl) ResolveMilestone(ctx context.Context, title string) (int, bool) {
	milestones, err := s.issueTracker.ListMilestones(ctx)
	if err != nil {
		slog.Error("Error getting milestone", "milestone", title, "error", err)
		return 0, false
	}

	for _, m := range milestones {
		if m.Title == title {
			slog.Debug("Milestone resolved", "milestone", title, "number", m.Number)
			return m.Number, true
		}
	}

	slog.Error("Milestone not found", "milestone", title, "milestones_checked", len(milestones))
	return 0, false
}

// Submit creates one issue from a record. Failures are logged and returned
// in the result, never as an error.
func (s *SubmitterImpl) Submit(ctx context.Context, file string, rec record.Record) SubmissionResult {
	result := SubmissionResult{
		File:      file,
		Title:     rec.Title,
		Milestone: rec.Milestone,
	}

	req := client.IssueRequest{
		Title:  rec.Title,
		Body:   rec.Raw,
		Labels: rec.Labels,
	}

	if rec.HasMilestone() {
		if number, ok := s.ResolveMilestone(ctx, rec.Milestone); ok {
			req.Milestone = &number
			result.MilestoneNumber = number
		}
	}

	issue, err := s.issueTracker.CreateIssue(ctx, req)
	if err != nil {
		slog.Error("Failed to create issue", "title", rec.Title, "error", err.Error())
		result.Err = err
		return result
	}

	slog.Info("Created issue", "title", rec.Title, "url", issue.WebURL)
	result.Issue = issue
	return result
}

// DryRunSubmitter logs records instead of submitting them
type DryRunSubmitter struct{}

// ResolveMilestone never resolves; no remote calls are made
func (DryRunSubmitter) ResolveMilestone(_ context.Context, _ string) (int, bool) {
	return 0, false
}

// Submit logs the parsed record and returns a skipped result
func (DryRunSubmitter) Submit(_ context.Context, file string, rec record.Record) SubmissionResult {
	slog.Info("Parsed issue (dry run)",
		"file", file,
		"title", rec.Title,
		"labels", rec.Labels,
		"milestone", rec.Milestone,
		"body_length", len(rec.Raw),
	)
	return SubmissionResult{
		File:      file,
		Title:     rec.Title,
		Milestone: rec.Milestone,
		Skipped:   true,
	}
}

var (
	_ Submitter = (*SubmitterImpl)(nil)
	_ Submitter = DryRunSubmitter{}
	_ Throttle  = (*FixedDelayThrottle)(nil)
	_ Throttle  = NoopThrottle{}
	_ Importer  = (*ImporterImpl)(nil)
)

func describe(result SubmissionResult) string {
	if result.Issue != nil {
		return fmt.Sprintf("#%d %s", result.Issue.Number, result.Issue.WebURL)
	}
	if result.Err != nil {
		return result.Err.Error()
	}
	return "skipped"
}
