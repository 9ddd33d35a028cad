package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/wverlaek/gitpod-pr-status/internal/gitpod"
)

// SelectEnvironment prompts for the environment to rename and returns its id.
func SelectEnvironment(envs []gitpod.Environment) (string, error) {
	if len(envs) == 0 {
		return "", fmt.Errorf("no environments found")
	}

	items := make([]string, len(envs))
	for i, env := range envs {
		name := env.Metadata.Name
		if name == "" {
			name = "(unnamed)"
		}
		items[i] = fmt.Sprintf(
			"%s %s %s",
			PadRight(name, 32),
			PadRight(phaseLabel(env.Status.Phase), 10),
			env.ID,
		)
	}

	prompt := promptui.Select{
		Label: "Select environment",
		Items: items,
		Size:  12,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), input)
		},
		StartInSearchMode: true,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return envs[idx].ID, nil
}

// phaseLabel strips the protobuf enum prefix for display.
func phaseLabel(phase string) string {
	return strings.ToLower(strings.TrimPrefix(phase, "ENVIRONMENT_PHASE_"))
}
