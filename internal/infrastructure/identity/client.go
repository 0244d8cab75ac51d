// Package identity implements the HTTP client for the identity boundary.
// The gate consumes it only through ports.IdentityClient, so a remote
// provider and the built-in one are interchangeable.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/veriscan/veriscan-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client fetches profiles from GET {base}/auth/profile with bearer auth.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given identity base URL. httpClient
// may be nil, in which case a client with a default timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// profileEnvelope is the expected 2xx body shape: {data:{user:{...}}}.
type profileEnvelope struct {
	Data struct {
		User *domain.Profile `json:"user"`
	} `json:"data"`
}

// FetchProfile exchanges the token for a profile. Error classification:
//   - 401/403: the boundary's definitive verdict → domain.ErrInvalidSession
//   - network failure or any other non-2xx → domain.ErrIdentityUnavailable
//   - 2xx with an unusable body → domain.ErrMalformedProfile
func (c *Client) FetchProfile(ctx context.Context, token string) (*domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrInvalidSession
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: status %d", domain.ErrIdentityUnavailable, resp.StatusCode)
	}

	var envelope profileEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedProfile, err)
	}
	user := envelope.Data.User
	if user == nil || user.ID == "" {
		return nil, fmt.Errorf("%w: missing user object", domain.ErrMalformedProfile)
	}

	return user, nil
}
