package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyQuery indicates a search was submitted with a blank expression.
var ErrEmptyQuery = errors.New("empty search expression")

// Client talks to the remote study-search endpoint. It is strictly
// downstream of the query builder: expressions go in as opaque strings and
// result pages come back as display data.
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
}

// NewClient creates a search client for the given base URL. pageSize caps
// the number of studies per result page.
func NewClient(baseURL string, timeout time.Duration, pageSize int) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		pageSize: pageSize,
		http:     &http.Client{Timeout: timeout},
	}
}

// Search submits the combined boolean expression and returns one page of
// results with facet counts. Pages are 1-based; page values below 1 are
// treated as 1.
func (c *Client) Search(ctx context.Context, expr string, page int) (*ResultPage, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}

	u, err := url.Parse(c.baseURL + "/studies/search")
	if err != nil {
		return nil, fmt.Errorf("build search URL: %w", err)
	}
	q := u.Query()
	q.Set("expr", expr)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned %s", resp.Status)
	}

	var result ResultPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &result, nil
}
