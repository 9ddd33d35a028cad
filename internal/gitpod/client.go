// Package gitpod talks to the Gitpod environment-management API.
package gitpod

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultHost is the managed Gitpod installation.
const DefaultHost = "app.gitpod.io"

// requestTimeout bounds every management API call.
const requestTimeout = 10 * time.Second

// listPageSize caps a single list call.
const listPageSize = 100

// Client calls the environment-management API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given host, DefaultHost when empty. The
// token source is consulted on every request, so a credential rotated on
// disk is picked up without a restart.
func NewClient(host string, src oauth2.TokenSource) *Client {
	if host == "" {
		host = DefaultHost
	}

	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL: "https://" + host,
		http:    httpClient,
	}
}

// SetBaseURL overrides the API base URL (for testing).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = strings.TrimSuffix(url, "/")
}

// EnvironmentMetadata carries the mutable display attributes of an
// environment.
type EnvironmentMetadata struct {
	Name string `json:"name"`
}

// EnvironmentStatus is the subset of the runtime status the tool consumes.
type EnvironmentStatus struct {
	Phase string `json:"phase"`
}

// Environment is one environment record from the management API.
type Environment struct {
	ID       string              `json:"id"`
	Metadata EnvironmentMetadata `json:"metadata"`
	Status   EnvironmentStatus   `json:"status"`
}

type updateEnvironmentRequest struct {
	EnvironmentID string              `json:"environmentId"`
	Metadata      EnvironmentMetadata `json:"metadata"`
}

// UpdateEnvironmentName renames the environment. An empty name resets the
// display name to the platform default.
func (c *Client) UpdateEnvironmentName(ctx context.Context, environmentID, name string) error {
	body := updateEnvironmentRequest{
		EnvironmentID: environmentID,
		Metadata:      EnvironmentMetadata{Name: name},
	}
	if err := c.post(ctx, "gitpod.v1.EnvironmentService/UpdateEnvironment", body, nil); err != nil {
		return fmt.Errorf("failed to update environment name: %w", err)
	}
	return nil
}

type listEnvironmentsRequest struct {
	Pagination struct {
		PageSize int `json:"pageSize"`
	} `json:"pagination"`
}

type listEnvironmentsResponse struct {
	Environments []Environment `json:"environments"`
}

// ListEnvironments returns the environments visible to the caller, used to
// pick a rename target when the watcher runs outside an environment.
func (c *Client) ListEnvironments(ctx context.Context) ([]Environment, error) {
	var req listEnvironmentsRequest
	req.Pagination.PageSize = listPageSize

	var resp listEnvironmentsResponse
	if err := c.post(ctx, "gitpod.v1.EnvironmentService/ListEnvironments", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to list environments: %w", err)
	}
	return resp.Environments, nil
}

// post issues one JSON request against the management API and decodes the
// response into out when out is non-nil.
func (c *Client) post(ctx context.Context, procedure string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+procedure, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
