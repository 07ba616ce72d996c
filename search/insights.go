package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// InsightsClient talks to the remote insights endpoint, which summarizes a
// result set for a boolean expression as markdown analysis text.
type InsightsClient struct {
	baseURL string
	http    *http.Client
}

// NewInsightsClient creates an insights client for the given base URL.
func NewInsightsClient(baseURL string, timeout time.Duration) *InsightsClient {
	return &InsightsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type summarizeRequest struct {
	Expr string `json:"expr"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize requests an analysis of the result set for the expression and
// returns the markdown text.
func (c *InsightsClient) Summarize(ctx context.Context, expr string) (string, error) {
	if strings.TrimSpace(expr) == "" {
		return "", ErrEmptyQuery
	}

	body, err := json.Marshal(summarizeRequest{Expr: expr})
	if err != nil {
		return "", fmt.Errorf("encode insights request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/insights/summarize", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build insights request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("insights request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insights endpoint returned %s", resp.Status)
	}

	var result summarizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode insights response: %w", err)
	}
	return result.Summary, nil
}
