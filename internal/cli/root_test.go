//go:build unit

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"md-issues/internal/client"
	"md-issues/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTracker struct {
	created []client.IssueRequest
	listed  int
}

func (s *stubTracker) ListMilestones(_ context.Context) ([]client.Milestone, error) {
	s.listed++
	return []client.Milestone{{Number: 2, Title: "v1"}}, nil
}

func (s *stubTracker) CreateIssue(_ context.Context, req client.IssueRequest) (*client.Issue, error) {
	s.created = append(s.created, req)
	if req.Title == "Broken" {
		return nil, errors.New("422 Validation Failed")
	}
	return &client.Issue{Number: len(s.created), Title: req.Title, WebURL: "https://github.com/octo/widgets/issues/1"}, nil
}

// withStubTracker swaps the tracker factory and the default logger for one test
func withStubTracker(t *testing.T) *stubTracker {
	t.Helper()
	stub := &stubTracker{}
	originalFunc := newTrackerFunc
	originalLogger := slog.Default()
	newTrackerFunc = func(*config.Config) (client.IssueTracker, error) { return stub, nil }
	t.Cleanup(func() {
		newTrackerFunc = originalFunc
		slog.SetDefault(originalLogger)
	})
	return stub
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		LogLevel:         "info",
		GitHubToken:      "test-token",
		GitHubRepository: "octo/widgets",
		MarkdownDir:      dir,
		RequestInterval:  time.Second,
	}
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(cfg, "test-version")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCommand_MissingConfig(t *testing.T) {
	stub := withStubTracker(t)
	cfg := testConfig(t.TempDir())
	cfg.GitHubToken = ""

	_, err := execute(t, cfg)

	require.Error(t, err)
	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "GITHUB_TOKEN", cfgErr.Field)
	assert.Empty(t, stub.created)
}

func TestNewRootCommand_ProcessesDirectory(t *testing.T) {
	stub := withStubTracker(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"),
		[]byte("## Fix bug\nLabels: bug\nMilestone: v1\n## Broken\nbody\n## Last\n"), 0o600))

	out, err := execute(t, testConfig(dir), "--interval", "0s", "--report")

	require.NoError(t, err)
	require.Len(t, stub.created, 3)
	assert.Equal(t, 1, stub.listed)
	require.NotNil(t, stub.created[0].Milestone)
	assert.Equal(t, 2, *stub.created[0].Milestone)
	assert.Equal(t, "Last", stub.created[2].Title)

	assert.Contains(t, out, "Starting GitHub issue creation process")
	assert.Contains(t, out, "Failed to create issue")
	assert.Contains(t, out, "Process completed successfully")
	assert.Contains(t, out, "succeeded: 2")
	assert.Contains(t, out, "failed: 1")
}

func TestNewRootCommand_FlagsOverrideConfig(t *testing.T) {
	withStubTracker(t)
	cfg := testConfig(t.TempDir())
	other := t.TempDir()

	_, err := execute(t, cfg, "--dir", other, "--interval", "5ms", "--log-level", "error")

	require.NoError(t, err)
	assert.Equal(t, other, cfg.MarkdownDir)
	assert.Equal(t, 5*time.Millisecond, cfg.RequestInterval)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestNewRootCommand_ZeroFiles(t *testing.T) {
	stub := withStubTracker(t)

	out, err := execute(t, testConfig(t.TempDir()))

	require.NoError(t, err)
	assert.Empty(t, stub.created)
	assert.Zero(t, stub.listed)
	assert.Contains(t, out, `msg="Found markdown files to process" count=0`)
}

func TestNewRootCommand_MissingDirectory(t *testing.T) {
	withStubTracker(t)

	_, err := execute(t, testConfig(filepath.Join(t.TempDir(), "missing")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list markdown files")
}

func TestNewRootCommand_DryRun(t *testing.T) {
	stub := withStubTracker(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("## One\n## Two\n"), 0o600))

	out, err := execute(t, testConfig(dir), "--dry-run")

	require.NoError(t, err)
	assert.Empty(t, stub.created)
	assert.Zero(t, stub.listed)
	assert.Contains(t, out, "Parsed issue (dry run)")
}

func TestNewRootCommand_RejectsArgs(t *testing.T) {
	withStubTracker(t)

	_, err := execute(t, testConfig(t.TempDir()), "extra")

	assert.Error(t, err)
}
