// Package opensolar talks to the OpenSolar design platform. Every call is
// scoped to one organization and authenticated with a bearer token that is
// cached for six days.
package opensolar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/liv8solar/solar-leads/internal/infra/integration"
)

const (
	service = "opensolar"

	DefaultBaseURL = "https://api.opensolar.com"
	TokenTTL       = 6 * 24 * time.Hour
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	Username   string
	Password   string
	OrgID      string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
	now         func() time.Time
}

func NewClient(username, password, orgID string, timeout time.Duration) *Client {
	return &Client{
		HTTPClient: integration.NewHTTPClient(timeout),
		BaseURL:    DefaultBaseURL,
		Username:   username,
		Password:   password,
		OrgID:      orgID,
		now:        time.Now,
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.Username != "" && c.Password != "" && c.OrgID != ""
}

// Token returns the cached token, authenticating first when there is none
// or it has expired. The check and the refresh run under one lock so
// concurrent callers trigger a single login.
func (c *Client) Token(ctx context.Context) (string, error) {
	if !c.Configured() {
		return "", integration.ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.token != "" && now.Before(c.tokenExpiry) {
		return c.token, nil
	}

	creds := map[string]string{"username": c.Username, "password": c.Password}
	var out struct {
		Token string `json:"token"`
	}
	url := strings.TrimRight(c.BaseURL, "/") + "/api-token-auth/"
	if err := integration.DoJSON(ctx, c.HTTPClient, service, http.MethodPost, url, nil, creds, &out); err != nil {
		return "", fmt.Errorf("opensolar auth failed: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("opensolar auth failed: empty token")
	}

	c.token = out.Token
	c.tokenExpiry = now.Add(TokenTTL)
	return c.token, nil
}

// do sends an authenticated request to /api/orgs/{org}{path}.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/orgs/%s%s", strings.TrimRight(c.BaseURL, "/"), c.OrgID, path)
	headers := map[string]string{"Authorization": "Bearer " + token}
	if err := integration.DoJSON(ctx, c.HTTPClient, service, method, url, headers, body, out); err != nil {
		return fmt.Errorf("opensolar %s %s: %w", method, path, err)
	}
	return nil
}

// list decodes either a bare JSON array or a paginated {"results": [...]}.
func (c *Client) list(ctx context.Context, path string, out any) error {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return err
	}
	return decodeList(raw, out)
}

func decodeList(raw json.RawMessage, out any) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return json.Unmarshal([]byte("[]"), out)
	}
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(raw, out)
	}

	var page struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return fmt.Errorf("opensolar: decode list: %w", err)
	}
	if len(page.Results) == 0 || string(page.Results) == "null" {
		return json.Unmarshal([]byte("[]"), out)
	}
	return json.Unmarshal(page.Results, out)
}
