package main

import (
	"fmt"

	"github.com/cli/go-gh/v2/pkg/repository"
	"github.com/spf13/cobra"

	"github.com/wverlaek/gitpod-pr-status/internal/git"
	"github.com/wverlaek/gitpod-pr-status/internal/github"
	"github.com/wverlaek/gitpod-pr-status/internal/status"
	"github.com/wverlaek/gitpod-pr-status/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the pull request status and label for the current branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command) error {
	ghClient, err := github.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repo, err := repository.Current()
	if err != nil {
		return fmt.Errorf("failed to get current repository: %w", err)
	}

	branch, err := (&git.Local{}).CurrentBranch(cmd.Context())
	if err != nil {
		return err
	}
	if branch == "" {
		return fmt.Errorf("no branch checked out")
	}

	pr, err := ghClient.PullRequestForBranch(cmd.Context(), repo.Owner, repo.Name, branch)
	if err != nil {
		return err
	}

	fmt.Print(ui.RenderStatus(ui.StatusView{
		Owner:         repo.Owner,
		Repo:          repo.Name,
		Branch:        branch,
		EnvironmentID: flagEnvironmentID,
		PullRequest:   pr,
		Outcome:       status.Compute(pr),
	}))
	return nil
}
