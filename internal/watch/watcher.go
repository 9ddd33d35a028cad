// Package watch contains the poll loop that keeps an environment's display
// name in sync with its branch's pull request.
package watch

import (
	"context"
	"time"

	"github.com/wverlaek/gitpod-pr-status/internal/git"
	"github.com/wverlaek/gitpod-pr-status/internal/github"
	"github.com/wverlaek/gitpod-pr-status/internal/gitpod"
	"github.com/wverlaek/gitpod-pr-status/internal/status"
	"github.com/wverlaek/gitpod-pr-status/pkg/log"
)

// DefaultInterval is the pause between polls when none is configured.
const DefaultInterval = 30 * time.Second

// appliedKind tags what the watcher last pushed to the environment API.
type appliedKind int

const (
	appliedNone    appliedKind = iota // nothing pushed since startup
	appliedSkipped                    // display cleared after losing the pull request
	appliedLabel                      // a label value, possibly empty
)

// appliedState remembers the last successful push so an unchanged label
// costs no API call. The label field is only meaningful for appliedLabel; an
// applied empty label (reset to default) is distinct from appliedSkipped.
type appliedState struct {
	kind  appliedKind
	label string
}

// Config carries the watcher's resolved identity and timing.
type Config struct {
	Owner         string
	Repo          string
	EnvironmentID string
	Interval      time.Duration
}

// Watcher polls the current branch's pull request and renames the
// environment when the derived label changes.
type Watcher struct {
	cfg      Config
	branches git.BranchResolver
	fetcher  github.PullRequestFetcher
	envs     gitpod.EnvironmentClient

	applied appliedState
}

// New creates a watcher. Interval falls back to DefaultInterval when unset.
func New(cfg Config, branches git.BranchResolver, fetcher github.PullRequestFetcher, envs gitpod.EnvironmentClient) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Watcher{
		cfg:      cfg,
		branches: branches,
		fetcher:  fetcher,
		envs:     envs,
	}
}

// Run polls until ctx is cancelled. Every iteration is self-contained:
// lookup problems skip the iteration and update failures are retried on the
// next one, so only cancellation ends the loop.
func (w *Watcher) Run(ctx context.Context) error {
	log.Infof("watching %s/%s: environment %s, polling every %s",
		w.cfg.Owner, w.cfg.Repo, w.cfg.EnvironmentID, w.cfg.Interval)

	for {
		w.tick(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.cfg.Interval):
		}
	}
}

// tick runs a single poll iteration.
func (w *Watcher) tick(ctx context.Context) {
	branch, err := w.branches.CurrentBranch(ctx)
	if err != nil {
		log.Warnf("skipping poll: %v", err)
		return
	}
	if branch == "" {
		// Detached HEAD. Leave the display alone until a branch is back.
		log.Debugf("skipping poll: no branch checked out")
		return
	}

	w.apply(ctx, w.observe(ctx, branch))
}

// observe fetches the branch's pull request and computes the desired label.
// A lookup failure is transient and yields the skip outcome.
func (w *Watcher) observe(ctx context.Context, branch string) status.Outcome {
	pr, err := w.fetcher.PullRequestForBranch(ctx, w.cfg.Owner, w.cfg.Repo, branch)
	if err != nil {
		log.Warnf("pull request lookup failed for %s: %v", branch, err)
		return status.Outcome{Skip: true}
	}
	return status.Compute(pr)
}

// apply reconciles the desired outcome with the last applied state, calling
// the environment API only on change.
func (w *Watcher) apply(ctx context.Context, outcome status.Outcome) {
	if outcome.Skip {
		if w.applied.kind != appliedLabel {
			return
		}
		// One clear per skip transition, best effort: the state advances
		// even when the call fails.
		if err := w.envs.UpdateEnvironmentName(ctx, w.cfg.EnvironmentID, ""); err != nil {
			log.Warnf("failed to clear environment name: %v", err)
		} else {
			log.Infof("cleared environment name: no active pull request")
		}
		w.applied = appliedState{kind: appliedSkipped}
		return
	}

	if w.applied.kind == appliedLabel && w.applied.label == outcome.Label {
		return
	}

	if err := w.envs.UpdateEnvironmentName(ctx, w.cfg.EnvironmentID, outcome.Label); err != nil {
		log.Errorf("failed to update environment name: %v", err)
		return
	}
	if outcome.Label == "" {
		log.Infof("reset environment name to default")
	} else {
		log.Infof("set environment name to %q", outcome.Label)
	}
	w.applied = appliedState{kind: appliedLabel, label: outcome.Label}
}
