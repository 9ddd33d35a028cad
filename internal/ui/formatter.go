package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/wverlaek/gitpod-pr-status/internal/models"
	"github.com/wverlaek/gitpod-pr-status/internal/status"
)

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// StatusView is everything the status command renders.
type StatusView struct {
	Owner         string
	Repo          string
	Branch        string
	EnvironmentID string
	PullRequest   *models.PullRequest
	Outcome       status.Outcome
}

// RenderStatus formats a one-shot report of the branch's pull request and
// the label the watcher would apply.
func RenderStatus(v StatusView) string {
	var b strings.Builder
	row := func(lbl, val string) {
		b.WriteString(labelStyle.Render(PadRight(lbl, 14)) + val + "\n")
	}

	row("Repository", fmt.Sprintf("%s/%s", v.Owner, v.Repo))
	row("Branch", v.Branch)
	if v.EnvironmentID != "" {
		row("Environment", v.EnvironmentID)
	}

	pr := v.PullRequest
	if pr == nil {
		row("Pull request", dimStyle.Render("none"))
		return b.String()
	}

	row("Pull request", fmt.Sprintf("#%d %s", pr.Number, pr.Title))
	row("State", renderState(pr))
	row("Review", renderReview(pr.ReviewDecision))
	row("Checks", renderChecks(pr.Checks))
	if v.Outcome.Label == "" {
		row("Label", dimStyle.Render("(default)"))
	} else {
		row("Label", v.Outcome.Label)
	}

	return b.String()
}

func renderState(pr *models.PullRequest) string {
	switch {
	case pr.State == models.PRStateMerged:
		return dimStyle.Render("merged")
	case pr.State == models.PRStateClosed:
		return dimStyle.Render("closed")
	case pr.IsDraft:
		return warnStyle.Render("open (draft)")
	default:
		return okStyle.Render("open")
	}
}

func renderReview(d models.ReviewDecision) string {
	switch d {
	case models.ReviewApproved:
		return okStyle.Render("approved")
	case models.ReviewChangesRequested:
		return errStyle.Render("changes requested")
	case models.ReviewRequired:
		return warnStyle.Render("review required")
	default:
		return dimStyle.Render("none")
	}
}

func renderChecks(s models.CheckState) string {
	switch {
	case s == models.ChecksSuccess:
		return okStyle.Render("✅ passed")
	case s.Failing():
		return errStyle.Render("❌ failed")
	case s.Running():
		return warnStyle.Render("⏳ running")
	default:
		return dimStyle.Render("none")
	}
}
