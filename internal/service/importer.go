package service

import (
	"context"
	"fmt"
	"log/slog"

	"md-issues/internal/record"
)

// ImporterImpl implements the Importer interface
type ImporterImpl struct {
	source    MarkdownSource
	submitter Submitter
	throttle  Throttle
}

// NewImporter creates a new importer instance
func NewImporter(source MarkdownSource, submitter Submitter, throttle Throttle) *ImporterImpl {
	return &ImporterImpl{
		source:    source,
		submitter: submitter,
		throttle:  throttle,
	}
}

// Run processes files one at a time and records one at a time. A failed
// submission never stops the batch; only source and context errors do.
func (i *ImporterImpl) Run(ctx context.Context) (*BatchReport, error) {
	names, err := i.source.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list markdown files: %w", err)
	}

	slog.Info("Found markdown files to process", "count", len(names))

	report := &BatchReport{Files: len(names)}

	for _, name := range names {
		slog.Info("Processing file", "file", name)

		file, err := i.source.Read(name)
		if err != nil {
			return report, fmt.Errorf("failed to read markdown file: %w", err)
		}

		records := record.ParseAll(file.Content)
		slog.Info("Found issues in file", "file", name, "count", len(records))

		for idx, rec := range records {
			result := i.submitter.Submit(ctx, name, rec)
			report.Add(result)

			slog.Debug("Record processed",
				"file", name,
				"index", idx,
				"title", rec.Title,
				"outcome", describe(result),
			)

			if err := i.throttle.Wait(ctx); err != nil {
				return report, fmt.Errorf("import interrupted: %w", err)
			}
		}
	}

	slog.Info("All issues have been processed",
		"files", report.Files,
		"records", report.Records,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
	)

	return report, nil
}
