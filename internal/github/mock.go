package github

import (
	"context"

	"github.com/wverlaek/gitpod-pr-status/internal/models"
)

// MockClient implements PullRequestFetcher for testing
type MockClient struct {
	// Control test behavior
	PullRequest      *models.PullRequest
	PullRequestError error

	// Track method calls
	PullRequestForBranchCalled bool
	Calls                      int

	// Store call arguments for verification
	LastOwner  string
	LastRepo   string
	LastBranch string
}

// PullRequestForBranch mocks the GraphQL API call
func (m *MockClient) PullRequestForBranch(ctx context.Context, owner, repo, branch string) (*models.PullRequest, error) {
	m.PullRequestForBranchCalled = true
	m.Calls++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastBranch = branch
	return m.PullRequest, m.PullRequestError
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.PullRequest = nil
	m.PullRequestError = nil
	m.PullRequestForBranchCalled = false
	m.Calls = 0
	m.LastOwner = ""
	m.LastRepo = ""
	m.LastBranch = ""
}

// CreateTestPR builds a pull request snapshot for tests.
func CreateTestPR(number int, title string) *models.PullRequest {
	return &models.PullRequest{
		Number:         number,
		Title:          title,
		State:          models.PRStateOpen,
		ReviewDecision: models.ReviewRequired,
		Checks:         models.ChecksPending,
	}
}

// Ensure MockClient implements PullRequestFetcher interface
var _ PullRequestFetcher = (*MockClient)(nil)
