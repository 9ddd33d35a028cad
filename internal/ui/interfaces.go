package ui

import "github.com/wverlaek/gitpod-pr-status/internal/gitpod"

// Prompter defines interface for user interaction
type Prompter interface {
	SelectEnvironment(envs []gitpod.Environment) (string, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// SelectEnvironment prompts user to select an environment
func (p *DefaultPrompter) SelectEnvironment(envs []gitpod.Environment) (string, error) {
	return SelectEnvironment(envs)
}

// MockPrompter for testing
type MockPrompter struct {
	SelectedID     string
	SelectionError error

	// Call tracking
	SelectEnvironmentCalled bool
	LastEnvironments        []gitpod.Environment
}

// SelectEnvironment mocks environment selection
func (m *MockPrompter) SelectEnvironment(envs []gitpod.Environment) (string, error) {
	m.SelectEnvironmentCalled = true
	m.LastEnvironments = envs
	return m.SelectedID, m.SelectionError
}
