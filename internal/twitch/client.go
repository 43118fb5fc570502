package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Default endpoints for the production Twitch API.
const (
	DefaultAuthURL = "https://id.twitch.tv/oauth2/token"
	DefaultAPIURL  = "https://api.twitch.tv/helix"
)

// Video is the subset of Helix video metadata the bot cares about.
type Video struct {
	ID string `json:"id"`

	// Type classifies the video: "archive" (past broadcast),
	// "highlight", or "upload".
	Type string `json:"type"`
}

// Client talks to the Twitch Helix API with an app access token.
//
// The token is refreshed explicitly via RefreshToken; the client does
// not refresh on its own. The bot's single-loop design means the
// client is never used concurrently, so token storage is unguarded.
type Client struct {
	httpc        *http.Client
	authURL      string
	apiURL       string
	clientID     string
	clientSecret string
	token        string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithAuthURL overrides the OAuth token endpoint (for tests).
func WithAuthURL(u string) Option {
	return func(c *Client) { c.authURL = u }
}

// WithAPIURL overrides the Helix base URL (for tests).
func WithAPIURL(u string) Option {
	return func(c *Client) { c.apiURL = strings.TrimRight(u, "/") }
}

// NewClient creates a Client for the given application credentials.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		httpc:        &http.Client{Timeout: 30 * time.Second},
		authURL:      DefaultAuthURL,
		apiURL:       DefaultAPIURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RefreshToken obtains a fresh app access token via the client
// credentials grant and stores it for subsequent lookups.
func (c *Client) RefreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("token refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &AuthError{StatusCode: resp.StatusCode, Operation: "token refresh"}
	}

	var grant struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return &AuthError{StatusCode: resp.StatusCode, Operation: "token refresh"}
	}
	c.token = grant.AccessToken
	return nil
}

// Video fetches metadata for a single video id. The boolean is false
// when Twitch has no video under that id.
func (c *Client) Video(ctx context.Context, id string) (Video, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/videos?id="+url.QueryEscape(id), nil)
	if err != nil {
		return Video{}, false, fmt.Errorf("build video request: %w", err)
	}
	req.Header.Set("Client-Id", c.clientID)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Video{}, false, fmt.Errorf("video lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Helix answers 404 for ids with no video entry.
		return Video{}, false, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Video{}, false, &AuthError{StatusCode: resp.StatusCode, Operation: "video lookup"}
	case resp.StatusCode != http.StatusOK:
		return Video{}, false, fmt.Errorf("video lookup: unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Data []Video `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Video{}, false, fmt.Errorf("decode video response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return Video{}, false, nil
	}
	return envelope.Data[0], true, nil
}
