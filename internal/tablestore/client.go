// Package tablestore is a thin client for the hosted table store that
// supplies the site's content collections. The store speaks a REST dialect:
// one endpoint per table, equality filters as "column=eq.value" query
// params, ordering as "order=column.asc".
package tablestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

// Client talks to one table-store project. A nil *Client is the
// "unconfigured" mode: callers skip fetches and use fallback content.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Configured reports whether url/key look usable. Placeholder sentinels are
// what an unconfigured deployment template ships with.
func Configured(baseURL, apiKey string) bool {
	return baseURL != "" &&
		apiKey != "" &&
		!strings.Contains(baseURL, "placeholder") &&
		apiKey != "placeholder-key"
}

// New returns a client for the store, or nil when the configuration is
// absent or still holds placeholder values.
func New(baseURL, apiKey string) *Client {
	if !Configured(baseURL, apiKey) {
		return nil
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Query narrows a Select: equality filters plus an optional order clause.
type Query struct {
	Filters map[string]string
	Order   string
	Asc     bool
}

// Select fetches all rows of a table matching the query and decodes the
// JSON array into dest.
func (c *Client) Select(ctx context.Context, table string, q Query, dest any) error {
	params := url.Values{}
	params.Set("select", "*")
	for column, value := range q.Filters {
		params.Set(column, "eq."+value)
	}
	if q.Order != "" {
		dir := ".desc"
		if q.Asc {
			dir = ".asc"
		}
		params.Set("order", q.Order+dir)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, url.PathEscape(table), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("apikey", c.apiKey)
	req.Header.Add("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error querying table store: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error from table store (%d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}
	return nil
}
