package gitpod

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func stubGitpodCLI(t *testing.T, output string, err error) *[]string {
	t.Helper()

	original := runGitpodCLI
	t.Cleanup(func() { runGitpodCLI = original })

	var gotArgs []string
	runGitpodCLI = func(ctx context.Context, args ...string) ([]byte, error) {
		gotArgs = append([]string{}, args...)
		return []byte(output), err
	}
	return &gotArgs
}

func TestResolveEnvironmentIDFromEnv(t *testing.T) {
	t.Setenv(environmentIDEnv, "01234567-aaaa-bbbb-cccc-0123456789ab")
	gotArgs := stubGitpodCLI(t, "", errors.New("should not run"))

	id, err := ResolveEnvironmentID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "01234567-aaaa-bbbb-cccc-0123456789ab" {
		t.Errorf("id = %q", id)
	}
	if len(*gotArgs) != 0 {
		t.Error("CLI ran despite environment variable")
	}
}

func TestResolveEnvironmentIDFromCLI(t *testing.T) {
	t.Setenv(environmentIDEnv, "")
	gotArgs := stubGitpodCLI(t, "01234567-aaaa-bbbb-cccc-0123456789ab\n", nil)

	id, err := ResolveEnvironmentID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "01234567-aaaa-bbbb-cccc-0123456789ab" {
		t.Errorf("id = %q", id)
	}

	want := []string{"environment", "get-id"}
	if len(*gotArgs) != len(want) || (*gotArgs)[0] != want[0] || (*gotArgs)[1] != want[1] {
		t.Errorf("args = %v, want %v", *gotArgs, want)
	}
}

func TestResolveEnvironmentIDErrors(t *testing.T) {
	tests := []struct {
		name   string
		output string
		runErr error
	}{
		{
			name:   "CLI not installed",
			runErr: errors.New("exec: \"gitpod\": executable file not found in $PATH"),
		},
		{
			name:   "CLI returns nothing",
			output: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(environmentIDEnv, "")
			stubGitpodCLI(t, tt.output, tt.runErr)

			_, err := ResolveEnvironmentID(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "failed to resolve environment id") {
				t.Errorf("error %q is not wrapped", err)
			}
		})
	}
}
