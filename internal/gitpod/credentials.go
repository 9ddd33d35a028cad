package gitpod

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// tokenEnv short-circuits the credential file when set.
const tokenEnv = "GITPOD_TOKEN"

// Credentials is the on-disk credential file for the management API.
type Credentials struct {
	Token string `yaml:"token"`
}

// DefaultCredentialsPath returns ~/.gitpod/credentials.yaml, or an empty
// string when the home directory cannot be determined.
func DefaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gitpod", "credentials.yaml")
}

// LoadCredentials reads and parses the credential file at path.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.Token == "" {
		return nil, errors.New("credentials file has no token")
	}
	return &creds, nil
}

// TokenSource returns the token source for the management API: GITPOD_TOKEN
// when set, otherwise the credential file at path, re-read on every request.
// A missing or empty credential fails the request that needed it, never the
// process.
func TokenSource(path string) oauth2.TokenSource {
	if token := os.Getenv(tokenEnv); token != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
	return &fileTokenSource{path: path}
}

type fileTokenSource struct {
	path string
}

func (s *fileTokenSource) Token() (*oauth2.Token, error) {
	creds, err := LoadCredentials(s.path)
	if err != nil {
		return nil, err
	}
	// A zero Expiry would let oauth2 cache the token forever; an expired
	// stamp forces a file read per request.
	return &oauth2.Token{AccessToken: creds.Token, Expiry: time.Now()}, nil
}
