package gitpod

import "context"

// EnvironmentClient defines the management API operations the tool depends on
type EnvironmentClient interface {
	UpdateEnvironmentName(ctx context.Context, environmentID, name string) error
	ListEnvironments(ctx context.Context) ([]Environment, error)
}

// Ensure Client implements EnvironmentClient interface
var _ EnvironmentClient = (*Client)(nil)
