package github

import (
	"context"
	"fmt"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
	"github.com/wverlaek/gitpod-pr-status/internal/models"
)

// requestTimeout bounds a single GraphQL round trip.
const requestTimeout = 10 * time.Second

// Client wraps the GitHub GraphQL API
type Client struct {
	gql api.GraphQLClient
}

// NewClient authenticates the way gh does: token from the environment or the
// gh CLI configuration. Errors when no token is available for the host.
func NewClient() (*Client, error) {
	gqlClient, err := api.NewGraphQLClient(api.ClientOptions{Timeout: requestTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{gql: *gqlClient}, nil
}

// NewClientFromOptions builds a client from explicit options. Tests use it to
// point the client at a stub server.
func NewClientFromOptions(opts api.ClientOptions) (*Client, error) {
	gqlClient, err := api.NewGraphQLClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	return &Client{gql: *gqlClient}, nil
}

// PullRequestForBranch fetches the most recently updated pull request whose
// head ref matches branch, in any state. Returns (nil, nil) when the branch
// has no pull request at all.
func (c *Client) PullRequestForBranch(ctx context.Context, owner, repo, branch string) (*models.PullRequest, error) {
	var q struct {
		Repository struct {
			PullRequests struct {
				Nodes []struct {
					Number         int
					Title          string
					State          string
					IsDraft        bool
					ReviewDecision string
					Commits        struct {
						Nodes []struct {
							Commit struct {
								StatusCheckRollup struct {
									State string
								}
							}
						}
					} `graphql:"commits(last: 1)"`
				}
			} `graphql:"pullRequests(headRefName: $branch, first: 1, orderBy: {field: UPDATED_AT, direction: DESC})"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(owner),
		"repo":   graphql.String(repo),
		"branch": graphql.String(branch),
	}

	if err := c.gql.QueryWithContext(ctx, "PullRequestForBranch", &q, variables); err != nil {
		return nil, fmt.Errorf("failed to fetch pull request for branch %s: %w", branch, err)
	}

	nodes := q.Repository.PullRequests.Nodes
	if len(nodes) == 0 {
		return nil, nil
	}

	node := nodes[0]
	pr := &models.PullRequest{
		Number:         node.Number,
		Title:          node.Title,
		State:          models.PRState(node.State),
		IsDraft:        node.IsDraft,
		ReviewDecision: models.ReviewDecision(node.ReviewDecision),
	}
	// statusCheckRollup is null when the head commit has no checks, which
	// decodes as the zero value.
	if commits := node.Commits.Nodes; len(commits) > 0 {
		pr.Checks = models.CheckState(commits[0].Commit.StatusCheckRollup.State)
	}
	return pr, nil
}
