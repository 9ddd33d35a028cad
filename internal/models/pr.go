package models

// PRState is the lifecycle state GitHub reports for a pull request.
type PRState string

const (
	PRStateOpen   PRState = "OPEN"
	PRStateMerged PRState = "MERGED"
	PRStateClosed PRState = "CLOSED"
)

// Finished reports whether the pull request is past its lifetime, meaning
// the environment name should fall back to the platform default.
func (s PRState) Finished() bool {
	return s == PRStateMerged || s == PRStateClosed
}

// ReviewDecision is GitHub's rolled-up review verdict for a pull request.
// Empty when the repository computes no decision.
type ReviewDecision string

const (
	ReviewApproved         ReviewDecision = "APPROVED"
	ReviewChangesRequested ReviewDecision = "CHANGES_REQUESTED"
	ReviewRequired         ReviewDecision = "REVIEW_REQUIRED"
	ReviewNone             ReviewDecision = ""
)

// CheckState is the aggregate statusCheckRollup state of the head commit.
// Empty when the commit has no checks configured.
type CheckState string

const (
	ChecksSuccess  CheckState = "SUCCESS"
	ChecksPending  CheckState = "PENDING"
	ChecksExpected CheckState = "EXPECTED"
	ChecksFailure  CheckState = "FAILURE"
	ChecksError    CheckState = "ERROR"
	ChecksNone     CheckState = ""
)

// Failing reports whether the rollup counts as a failed CI run.
func (s CheckState) Failing() bool {
	return s == ChecksFailure || s == ChecksError
}

// Running reports whether checks are still in flight. EXPECTED is a queued
// required check that GitHub surfaces before the run starts.
func (s CheckState) Running() bool {
	return s == ChecksPending || s == ChecksExpected
}

// PullRequest is one poll's snapshot of the most recently updated pull
// request for a branch. It is rebuilt on every poll and never persisted.
type PullRequest struct {
	Number         int
	Title          string
	State          PRState
	IsDraft        bool
	ReviewDecision ReviewDecision
	Checks         CheckState
}
