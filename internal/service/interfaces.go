package service

import (
	"context"

	"md-issues/internal/client"
	"md-issues/internal/record"
	"md-issues/internal/source"
)

// SubmissionResult is the outcome of one record's submission.
// Exactly one of Issue and Err is set, unless the record was Skipped.
type SubmissionResult struct {
	File            string        `yaml:"file"`
	Title           string        `yaml:"title"`
	Milestone       string        `yaml:"milestone,omitempty"`
	MilestoneNumber int           `yaml:"milestone_number,omitempty"`
	Issue           *client.Issue `yaml:"issue,omitempty"`
	Skipped         bool          `yaml:"skipped,omitempty"`
	Err             error         `yaml:"-"`
}

// Succeeded reports whether the issue was created
func (r SubmissionResult) Succeeded() bool {
	return r.Err == nil && r.Issue != nil
}

// MarkdownSource defines the interface for reading issue files
type MarkdownSource interface {
	// List returns the markdown file names to process, in processing order
	List() ([]string, error)

	// Read loads one file
	Read(name string) (*source.MarkdownFile, error)
}

// Submitter defines the per-record submission workflow
type Submitter interface {
	// ResolveMilestone maps a milestone title to its number; ok is false when unresolved
	ResolveMilestone(ctx context.Context, title string) (number int, ok bool)

	// Submit creates one issue from a record and never returns an error
	Submit(ctx context.Context, file string, rec record.Record) SubmissionResult
}

// Throttle paces consecutive submissions
type Throttle interface {
	// Wait blocks until the next submission may start
	Wait(ctx context.Context) error
}

// Importer defines the batch import workflow
type Importer interface {
	// Run processes every record of every markdown file and reports the outcomes
	Run(ctx context.Context) (*BatchReport, error)
}
