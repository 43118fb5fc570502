package srcom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production speedrun.com API root.
const DefaultBaseURL = "https://www.speedrun.com/api/v1"

// userAgent identifies the bot to the API, as required by the
// speedrun.com API guidelines.
const userAgent = "badeline-leaderboard-bot/1.0"

// statusNew is the status filter for pending submissions.
const statusNew = "new"

// statusRejected is the target status for a reject call.
const statusRejected = "rejected"

// Client talks to the speedrun.com REST API.
type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithBaseURL overrides the API root (for tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// NewClient creates a Client authenticating with the given API key.
// The key is only needed for reject calls; listings are public.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewRuns lists the game's pending submissions using the given query
// parameters. The request asks the edge cache for a fresh response at
// best effort.
func (c *Client) NewRuns(ctx context.Context, gameID string, q Query) ([]Run, error) {
	params := url.Values{}
	params.Set("game", gameID)
	params.Set("status", statusNew)
	params.Set("orderby", q.OrderBy)
	params.Set("direction", q.Direction)
	params.Set("max", strconv.Itoa(q.Max))
	reqURL := c.baseURL + "/runs?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build runs request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list new runs for game %s: %w", gameID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	var envelope struct {
		Data []Run `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode runs for game %s: %w", gameID, err)
	}
	return envelope.Data, nil
}

// Reject sets a run's status to rejected with the given reason.
//
// The API refuses a second reject of an already-rejected run; callers
// avoid that through the carried rejected set rather than by special
// handling here.
func (c *Client) Reject(ctx context.Context, runID, reason string) error {
	body, err := json.Marshal(map[string]any{
		"status": map[string]string{
			"status": statusRejected,
			"reason": reason,
		},
	})
	if err != nil {
		return fmt.Errorf("encode reject body: %w", err)
	}

	reqURL := c.baseURL + "/runs/" + url.PathEscape(runID) + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build reject request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("reject run %s: %w", runID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}
	return nil
}
