// Package classifier implements the HTTP client for the external
// AI-detection classifier API.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/veriscan/veriscan-api/internal/core/domain"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Client calls POST {base}/v1/classify.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given classifier base URL. httpClient
// may be nil, in which case a client with a default timeout is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

type classifyRequest struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
}

type classifyResponse struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
}

func (c *Client) Classify(ctx context.Context, in ports.ClassifyInput) (*ports.ClassifyResult, error) {
	body, err := json.Marshal(classifyRequest{Kind: string(in.Kind), Content: in.Content})
	if err != nil {
		return nil, fmt.Errorf("encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("classifier status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}

	return &ports.ClassifyResult{
		Verdict:    domain.Verdict(out.Verdict),
		Confidence: out.Confidence,
	}, nil
}
