package git

import "context"

// MockResolver implements BranchResolver for testing
type MockResolver struct {
	Branch      string
	BranchError error

	// Track method calls
	CurrentBranchCalled bool
	Calls               int
}

func (m *MockResolver) CurrentBranch(ctx context.Context) (string, error) {
	m.CurrentBranchCalled = true
	m.Calls++
	return m.Branch, m.BranchError
}

// Reset clears all tracking data for fresh test
func (m *MockResolver) Reset() {
	m.Branch = ""
	m.BranchError = nil
	m.CurrentBranchCalled = false
	m.Calls = 0
}

// Ensure MockResolver implements BranchResolver interface
var _ BranchResolver = (*MockResolver)(nil)
