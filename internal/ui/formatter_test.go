package ui

import (
	"strings"
	"testing"

	"github.com/wverlaek/gitpod-pr-status/internal/models"
	"github.com/wverlaek/gitpod-pr-status/internal/status"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "pad short string",
			input:    "hello",
			width:    10,
			expected: "hello     ",
		},
		{
			name:     "no padding needed",
			input:    "hello",
			width:    5,
			expected: "hello",
		},
		{
			name:     "string longer than width",
			input:    "hello world",
			width:    5,
			expected: "hello world",
		},
		{
			name:     "empty string",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "zero width",
			input:    "hello",
			width:    0,
			expected: "hello",
		},
		{
			name:     "unicode characters",
			input:    "こんにちは",
			width:    15,
			expected: "こんにちは     ",
		},
		{
			name:     "emoji counts as double width",
			input:    "📝",
			width:    4,
			expected: "📝  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadRight(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	pr := &models.PullRequest{
		Number:         42,
		Title:          "Add retry to fetch loop",
		State:          models.PRStateOpen,
		ReviewDecision: models.ReviewApproved,
		Checks:         models.ChecksSuccess,
	}

	out := RenderStatus(StatusView{
		Owner:         "wverlaek",
		Repo:          "dotfiles",
		Branch:        "feature/retry",
		EnvironmentID: "env-1",
		PullRequest:   pr,
		Outcome:       status.Compute(pr),
	})

	for _, want := range []string{
		"wverlaek/dotfiles",
		"feature/retry",
		"env-1",
		"#42 Add retry to fetch loop",
		"approved",
		"passed",
		"✅ Add retry to fetch loop",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRenderStatusWithoutPullRequest(t *testing.T) {
	out := RenderStatus(StatusView{
		Owner:   "wverlaek",
		Repo:    "dotfiles",
		Branch:  "main",
		Outcome: status.Compute(nil),
	})

	if !strings.Contains(out, "none") {
		t.Errorf("output does not report the missing pull request:\n%s", out)
	}
	if strings.Contains(out, "Label") {
		t.Errorf("output renders a label row without a pull request:\n%s", out)
	}
}

func TestRenderStatusFinishedPullRequest(t *testing.T) {
	pr := &models.PullRequest{
		Number: 7,
		Title:  "Ship it",
		State:  models.PRStateMerged,
	}

	out := RenderStatus(StatusView{
		Owner:       "wverlaek",
		Repo:        "dotfiles",
		Branch:      "release",
		PullRequest: pr,
		Outcome:     status.Compute(pr),
	})

	if !strings.Contains(out, "merged") {
		t.Errorf("output does not report the merged state:\n%s", out)
	}
	if !strings.Contains(out, "(default)") {
		t.Errorf("output does not report the reset label:\n%s", out)
	}
}
