package gitpod

import "context"

// MockClient implements EnvironmentClient for testing
type MockClient struct {
	// Control test behavior
	UpdateError  error
	Environments []Environment
	ListError    error

	// Track method calls
	UpdateCalls int
	ListCalled  bool

	// Store call arguments for verification
	LastEnvironmentID string
	LastName          string
	Names             []string
}

// UpdateEnvironmentName mocks the rename API call
func (m *MockClient) UpdateEnvironmentName(ctx context.Context, environmentID, name string) error {
	m.UpdateCalls++
	m.LastEnvironmentID = environmentID
	m.LastName = name
	m.Names = append(m.Names, name)
	return m.UpdateError
}

// ListEnvironments mocks the list API call
func (m *MockClient) ListEnvironments(ctx context.Context) ([]Environment, error) {
	m.ListCalled = true
	return m.Environments, m.ListError
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.UpdateError = nil
	m.Environments = nil
	m.ListError = nil
	m.UpdateCalls = 0
	m.ListCalled = false
	m.LastEnvironmentID = ""
	m.LastName = ""
	m.Names = nil
}

// Ensure MockClient implements EnvironmentClient interface
var _ EnvironmentClient = (*MockClient)(nil)
