package gitpod

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// environmentIDEnv is exported inside every Gitpod environment.
const environmentIDEnv = "GITPOD_ENVIRONMENT_ID"

// runGitpodCLI is swapped in tests.
var runGitpodCLI = func(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, "gitpod", args...).Output()
}

// ResolveEnvironmentID determines the environment this process runs in:
// GITPOD_ENVIRONMENT_ID when exported, otherwise the gitpod CLI.
func ResolveEnvironmentID(ctx context.Context) (string, error) {
	if id := os.Getenv(environmentIDEnv); id != "" {
		return id, nil
	}

	out, err := runGitpodCLI(ctx, "environment", "get-id")
	if err != nil {
		return "", fmt.Errorf("failed to resolve environment id: %w", err)
	}

	id := strings.TrimSpace(string(out))
	if id == "" {
		return "", errors.New("failed to resolve environment id: gitpod CLI returned no id")
	}
	return id, nil
}
