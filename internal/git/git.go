// Package git resolves the branch checked out in the local repository.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// BranchResolver reports the currently checked out branch.
type BranchResolver interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// runGit is swapped in tests.
var runGit = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "git", args...).Output()
}

// Local resolves branches by running git in Dir, or in the process working
// directory when Dir is empty.
type Local struct {
	Dir string
}

// CurrentBranch returns the checked out branch name. A detached HEAD yields
// an empty name and no error.
func (l *Local) CurrentBranch(ctx context.Context) (string, error) {
	args := []string{}
	if l.Dir != "" {
		args = append(args, "-C", l.Dir)
	}
	args = append(args, "branch", "--show-current")

	out, err := runGit(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("failed to read current branch: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Ensure Local implements BranchResolver interface
var _ BranchResolver = (*Local)(nil)
