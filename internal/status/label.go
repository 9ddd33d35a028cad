// Package status derives an environment display name from a pull request
// snapshot.
package status

import (
	"strings"
	"unicode/utf8"

	"github.com/wverlaek/gitpod-pr-status/internal/models"
)

// MaxLabelLength caps the rendered name in runes, emoji tag included.
const MaxLabelLength = 80

// ellipsis terminates titles cut at the length budget.
const ellipsis = "…"

// Emoji tags, in the order tagFor evaluates them.
const (
	TagDraftFailing     = "📝❌"
	TagDraftPending     = "📝⏳"
	TagDraft            = "📝"
	TagFailing          = "❌"
	TagApproved         = "✅"
	TagChangesRequested = "🔄"
	TagPending          = "⏳"
	TagReviewRequired   = "👀"
	TagReady            = "🟢"
)

// Outcome is the result of one label computation. Skip means there is no
// active pull request to report: the watcher leaves the current name alone
// apart from clearing a previously applied label. A non-skip Outcome carries
// the desired name, where an empty Label resets the environment to its
// platform default.
type Outcome struct {
	Skip  bool
	Label string
}

// Compute derives the environment label from a pull request snapshot. A nil
// snapshot yields the Skip outcome; a merged or closed pull request yields an
// empty label.
func Compute(pr *models.PullRequest) Outcome {
	if pr == nil {
		return Outcome{Skip: true}
	}
	if pr.State.Finished() {
		return Outcome{}
	}

	tag := tagFor(pr)
	budget := MaxLabelLength - utf8.RuneCountInString(tag) - 1
	return Outcome{Label: tag + " " + truncateTitle(pr.Title, budget)}
}

// tagFor picks the emoji tag for an open pull request. The order encodes
// precedence: the first matching rule wins, so a failing draft outranks an
// approved review.
func tagFor(pr *models.PullRequest) string {
	switch {
	case pr.IsDraft && pr.Checks.Failing():
		return TagDraftFailing
	case pr.IsDraft && pr.Checks.Running():
		return TagDraftPending
	case pr.IsDraft:
		return TagDraft
	case pr.Checks.Failing():
		return TagFailing
	case pr.ReviewDecision == models.ReviewApproved:
		return TagApproved
	case pr.ReviewDecision == models.ReviewChangesRequested:
		return TagChangesRequested
	case pr.ReviewDecision == models.ReviewRequired && pr.Checks.Running():
		return TagPending
	case pr.ReviewDecision == models.ReviewRequired:
		return TagReviewRequired
	case pr.Checks.Running():
		return TagPending
	default:
		return TagReady
	}
}

// truncateTitle clips title to at most budget runes. When a cut is needed the
// title is cut to budget-1 runes, trimmed back to the last space inside the
// cut when one exists, and finished with an ellipsis.
func truncateTitle(title string, budget int) string {
	if budget <= 0 {
		return ""
	}
	runes := []rune(title)
	if len(runes) <= budget {
		return title
	}

	cut := string(runes[:budget-1])
	if i := strings.LastIndex(cut, " "); i >= 0 {
		cut = cut[:i]
	}
	return cut + ellipsis
}
