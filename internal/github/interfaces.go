package github

import (
	"context"

	"github.com/wverlaek/gitpod-pr-status/internal/models"
)

// PullRequestFetcher defines the GitHub lookup the watcher depends on
type PullRequestFetcher interface {
	PullRequestForBranch(ctx context.Context, owner, repo, branch string) (*models.PullRequest, error)
}

// Ensure Client implements PullRequestFetcher interface
var _ PullRequestFetcher = (*Client)(nil)
