package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v68/github"

	"md-issues/internal/config"
)

// GitHubClient implements IssueTracker interface for GitHub operations
type GitHubClient struct {
	gh    *github.Client
	cfg   *config.Config
	token string
}

// NewGitHubClient creates a new GitHub client instance
func NewGitHubClient(cfg *config.Config) (*GitHubClient, error) {
	slog.Debug("Initializing GitHub client",
		"base_url", cfg.GitHubBaseURL,
		"repository", cfg.GitHubRepository,
		"token_configured", cfg.GitHubToken != "",
	)

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	gh := github.NewClient(httpClient).WithAuthToken(cfg.GitHubToken)

	if cfg.GitHubBaseURL != "" {
		baseURL := cfg.GitHubBaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			slog.Error("Failed to parse GitHub API URL", "error", err, "base_url", cfg.GitHubBaseURL)
			return nil, fmt.Errorf("error parsing GitHub API URL: %w", err)
		}
		gh.BaseURL = u
	}

	slog.Info("GitHub client initialized successfully", "base_url", gh.BaseURL.String())

	return &GitHubClient{
		gh:    gh,
		cfg:   cfg,
		token: cfg.GitHubToken,
	}, nil
}

// ListMilestones returns the first page of milestones for the configured repository.
// Pagination is not followed: milestones beyond the first page are not returned.
func (g *GitHubClient) ListMilestones(ctx context.Context) ([]Milestone, error) {
	owner, repo := g.cfg.SplitRepository()
	slog.Debug("Listing GitHub milestones", "owner", owner, "repo", repo)

	if g.token == "" {
		slog.Error("GitHub API token not configured")
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable not set")
	}

	milestones, resp, err := g.gh.Issues.ListMilestones(ctx, owner, repo, nil)
	if err != nil {
		slog.Debug("Milestone listing failed", "error", err, "owner", owner, "repo", repo)
		return nil, fmt.Errorf("error listing milestones: %w", err)
	}

	slog.Debug("Received milestones from GitHub API",
		"status_code", resp.StatusCode,
		"count", len(milestones),
		"has_next_page", resp.NextPage != 0,
	)

	result := make([]Milestone, 0, len(milestones))
	for _, m := range milestones {
		result = append(result, Milestone{
			Number: m.GetNumber(),
			Title:  m.GetTitle(),
		})
	}

	return result, nil
}

// CreateIssue creates a new GitHub issue and returns issue details
func (g *GitHubClient) CreateIssue(ctx context.Context, req IssueRequest) (*Issue, error) {
	owner, repo := g.cfg.SplitRepository()
	slog.Debug("Creating GitHub issue",
		"owner", owner,
		"repo", repo,
		"title", req.Title,
		"body_length", len(req.Body),
		"labels", req.Labels,
		"has_milestone", req.Milestone != nil,
	)

	if g.token == "" {
		slog.Error("GitHub API token not configured")
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable not set")
	}

	issueReq := &github.IssueRequest{
		Title:     github.Ptr(req.Title),
		Body:      github.Ptr(req.Body),
		Milestone: req.Milestone,
	}
	if len(req.Labels) > 0 {
		labels := append([]string(nil), req.Labels...)
		issueReq.Labels = &labels
	}

	created, resp, err := g.gh.Issues.Create(ctx, owner, repo, issueReq)
	if err != nil {
		slog.Debug("Issue creation failed", "error", err, "owner", owner, "repo", repo)
		return nil, fmt.Errorf("error creating issue: %w", err)
	}

	slog.Debug("Received response from GitHub API",
		"status_code", resp.StatusCode,
		"number", created.GetNumber(),
	)

	return &Issue{
		ID:     created.GetID(),
		Number: created.GetNumber(),
		Title:  created.GetTitle(),
		WebURL: created.GetHTMLURL(),
	}, nil
}
