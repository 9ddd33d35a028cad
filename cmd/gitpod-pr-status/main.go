package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/repository"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wverlaek/gitpod-pr-status/internal/config"
	"github.com/wverlaek/gitpod-pr-status/internal/git"
	"github.com/wverlaek/gitpod-pr-status/internal/github"
	"github.com/wverlaek/gitpod-pr-status/internal/gitpod"
	"github.com/wverlaek/gitpod-pr-status/internal/ui"
	"github.com/wverlaek/gitpod-pr-status/internal/watch"
	"github.com/wverlaek/gitpod-pr-status/pkg/log"
)

var (
	flagInterval      time.Duration
	flagHost          string
	flagEnvironmentID string
	flagCredentials   string
	flagLogLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "gitpod-pr-status",
	Short: "Keep a Gitpod environment named after its branch's pull request",
	Long: `gitpod-pr-status watches the pull request for the currently checked out
branch and renames the Gitpod environment to match its status: an emoji tag
for draft, review and CI state followed by the truncated title. The name is
cleared again when the pull request is merged or closed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().DurationVar(&flagInterval, "interval", config.DefaultPollInterval, "pause between polls")
	rootCmd.PersistentFlags().StringVar(&flagHost, "gitpod-host", config.DefaultGitpodHost, "environment-management API host")
	rootCmd.PersistentFlags().StringVar(&flagEnvironmentID, "environment-id", "", "environment to rename (default: the environment this runs in)")
	rootCmd.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "path to the Gitpod credentials file (default: ~/.gitpod/credentials.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "log verbosity: debug, info, warn or error")
}

// loadConfig merges environment defaults with explicit flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("interval") {
		cfg.PollInterval = flagInterval
	}
	if cmd.Flags().Changed("gitpod-host") {
		cfg.GitpodHost = flagHost
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("credentials") {
		cfg.CredentialsPath = flagCredentials
	}
	if flagEnvironmentID != "" {
		cfg.EnvironmentID = flagEnvironmentID
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = gitpod.DefaultCredentialsPath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveEnvironment picks the rename target: the --environment-id flag, the
// environment this process runs in, or an interactive pick over the caller's
// environments.
func resolveEnvironment(cmd *cobra.Command, cfg *config.Config, envs gitpod.EnvironmentClient, prompter ui.Prompter) (string, error) {
	if cfg.EnvironmentID != "" {
		return cfg.EnvironmentID, nil
	}

	id, err := gitpod.ResolveEnvironmentID(cmd.Context())
	if err == nil {
		return id, nil
	}
	log.Debugf("not running inside an environment: %v", err)

	list, listErr := envs.ListEnvironments(cmd.Context())
	if listErr != nil {
		return "", fmt.Errorf("failed to resolve environment id: %w", listErr)
	}
	id, promptErr := prompter.SelectEnvironment(list)
	if promptErr != nil {
		return "", fmt.Errorf("failed to resolve environment id: %w", promptErr)
	}
	return id, nil
}

func runWatch(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.Init(log.Level(cfg.LogLevel))
	defer func() { _ = log.Sync() }()

	ghClient, err := github.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	repo, err := repository.Current()
	if err != nil {
		return fmt.Errorf("failed to get current repository: %w", err)
	}

	envClient := gitpod.NewClient(cfg.GitpodHost, gitpod.TokenSource(cfg.CredentialsPath))

	envID, err := resolveEnvironment(cmd, cfg, envClient, &ui.DefaultPrompter{})
	if err != nil {
		return err
	}

	watcher := watch.New(watch.Config{
		Owner:         repo.Owner,
		Repo:          repo.Name,
		EnvironmentID: envID,
		Interval:      cfg.PollInterval,
	}, &git.Local{}, ghClient, envClient)

	return watcher.Run(cmd.Context())
}

func main() {
	// A dotfiles-managed .env can supply tokens and knobs.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
