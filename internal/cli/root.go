// Package cli provides the command-line interface for md-issues.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"md-issues/internal/client"
	"md-issues/internal/config"
	"md-issues/internal/service"
	"md-issues/internal/source"
)

// newTrackerFunc builds the remote issue tracker, allowing it to be replaced in tests.
var newTrackerFunc = func(cfg *config.Config) (client.IssueTracker, error) {
	return client.NewGitHubClient(cfg)
}

// NewRootCommand creates the root command for md-issues.
// Flags default to the values already loaded into cfg and override them when set.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	var dryRun bool
	var printReport bool

	root := &cobra.Command{
		Use:   "md-issues",
		Short: "Create GitHub issues from markdown files",
		Long: `md-issues reads every .md file in a directory, splits it into issues on
"## " headings and creates one GitHub issue per block.

Within a block, a "Labels: a, b" line sets labels and a "Milestone: <title>"
line sets the milestone. The whole block is used as the issue body.

Issues are created one at a time with a fixed delay between requests.
Running twice creates duplicates.

Requires GITHUB_TOKEN and GITHUB_REPO (owner/name), from the environment or a .env file.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			setupLogger(cmd.OutOrStdout(), cfg.GetLogLevel())

			slog.Info("Starting GitHub issue creation process",
				"version", version,
				"repository", cfg.GitHubRepository,
				"dir", cfg.MarkdownDir,
				"request_interval", cfg.RequestInterval,
				"dry_run", dryRun,
			)

			importer, err := buildImporter(cfg, dryRun)
			if err != nil {
				return err
			}

			report, err := importer.Run(cmd.Context())
			if err != nil {
				slog.Error("Error processing markdown files", "error", err)
				return err
			}

			for _, failed := range report.Failures() {
				slog.Warn("Issue was not created", "file", failed.File, "title", failed.Title, "error", failed.Err)
			}

			if printReport {
				if err := report.WriteYAML(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			slog.Info("Process completed successfully")
			return nil
		},
	}

	root.Flags().StringVar(&cfg.MarkdownDir, "dir", cfg.MarkdownDir, "directory containing markdown issue files (MARKDOWN_DIR)")
	root.Flags().DurationVar(&cfg.RequestInterval, "interval", cfg.RequestInterval, "delay after each issue submission (REQUEST_INTERVAL)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error (LOG_LEVEL)")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "parse and log issues without calling the GitHub API")
	root.Flags().BoolVar(&printReport, "report", false, "print a YAML summary of the batch when it finishes")

	return root
}

func buildImporter(cfg *config.Config, dryRun bool) (*service.ImporterImpl, error) {
	src := source.NewReader(cfg.MarkdownDir)

	if dryRun {
		return service.NewImporter(src, service.DryRunSubmitter{}, service.NoopThrottle{}), nil
	}

	tracker, err := newTrackerFunc(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub client: %w", err)
	}

	return service.NewImporter(
		src,
		service.NewSubmitter(tracker),
		service.NewFixedDelayThrottle(cfg.RequestInterval),
	), nil
}
