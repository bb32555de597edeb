package service

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// BatchReport collects the outcomes of one import run
type BatchReport struct {
	Files     int                `yaml:"files"`
	Records   int                `yaml:"records"`
	Succeeded int                `yaml:"succeeded"`
	Failed    int                `yaml:"failed"`
	Skipped   int                `yaml:"skipped,omitempty"`
	Results   []SubmissionResult `yaml:"results"`
}

// Add appends a result and updates the counters
func (b *BatchReport) Add(result SubmissionResult) {
	b.Records++
	switch {
	case result.Skipped:
		b.Skipped++
	case result.Succeeded():
		b.Succeeded++
	default:
		b.Failed++
	}
	b.Results = append(b.Results, result)
}

// Failures returns the results whose submission failed, in batch order
func (b *BatchReport) Failures() []SubmissionResult {
	var failed []SubmissionResult
	for _, r := range b.Results {
		if !r.Skipped && !r.Succeeded() {
			failed = append(failed, r)
		}
	}
	return failed
}

type resultView struct {
	SubmissionResult `yaml:",inline"`
	Error            string `yaml:"error,omitempty"`
}

type reportView struct {
	Files     int          `yaml:"files"`
	Records   int          `yaml:"records"`
	Succeeded int          `yaml:"succeeded"`
	Failed    int          `yaml:"failed"`
	Skipped   int          `yaml:"skipped,omitempty"`
	Results   []resultView `yaml:"results"`
}

// WriteYAML renders the report as a YAML document
func (b *BatchReport) WriteYAML(w io.Writer) error {
	view := reportView{
		Files:     b.Files,
		Records:   b.Records,
		Succeeded: b.Succeeded,
		Failed:    b.Failed,
		Skipped:   b.Skipped,
		Results:   make([]resultView, 0, len(b.Results)),
	}
	for _, r := range b.Results {
		rv := resultView{SubmissionResult: r}
		if r.Err != nil {
			rv.Error = r.Err.Error()
		}
		view.Results = append(view.Results, rv)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("error encoding batch report: %w", err)
	}
	return enc.Close()
}
