// Package fitbit is the REST client for the external activity source: OAuth2
// token lifecycle plus the daily activity endpoint. The core only depends on
// the DailyFitbitData shape it produces.
package fitbit

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/julianstephens/vitalog/internal/models"
)

const (
	defaultAuthBaseURL = "https://www.fitbit.com/oauth2/authorize"
	defaultTokenURL    = "https://api.fitbit.com/oauth2/token"
	defaultRevokeURL   = "https://api.fitbit.com/oauth2/revoke"
	defaultAPIBaseURL  = "https://api.fitbit.com/1/user/-"

	// DefaultScopes covers everything the sync path reads.
	defaultTimeout = 30 * time.Second
)

// DefaultScopes are the OAuth scopes requested on connect.
var DefaultScopes = []string{"activity", "heartrate", "profile"}

// Tokens is the OAuth credential pair plus its expiry.
type Tokens struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Expired reports whether the access token needs a refresh, with a small
// safety margin.
func (t Tokens) Expired(now time.Time) bool {
	return !now.Add(5 * time.Minute).Before(t.ExpiresAt)
}

// Client talks to the Fitbit web API.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client

	authBaseURL string
	tokenURL    string
	revokeURL   string
	apiBaseURL  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the endpoint URLs; tests point them at a local
// server.
func WithBaseURLs(token, revoke, api string) Option {
	return func(c *Client) {
		c.tokenURL = token
		c.revokeURL = revoke
		c.apiBaseURL = api
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

func NewClient(clientID, clientSecret, redirectURI string, opts ...Option) *Client {
	c := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		authBaseURL:  defaultAuthBaseURL,
		tokenURL:     defaultTokenURL,
		revokeURL:    defaultRevokeURL,
		apiBaseURL:   defaultAPIBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AuthorizationURL builds the browser URL the user visits to grant access.
func (c *Client) AuthorizationURL(scopes []string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.clientID)
	q.Set("redirect_uri", c.redirectURI)
	q.Set("scope", strings.Join(scopes, " "))
	return c.authBaseURL + "?" + q.Encode()
}

func (c *Client) basicAuth() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.clientID+":"+c.clientSecret))
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (c *Client) postToken(ctx context.Context, form url.Values) (Tokens, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", c.basicAuth())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Tokens{}, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Tokens{}, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return Tokens{}, fmt.Errorf("failed to parse token response: %w", err)
	}
	return Tokens{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}

// ExchangeCode trades an authorization code for a token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Tokens, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)
	return c.postToken(ctx, form)
}

// Refresh trades a refresh token for a fresh token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	return c.postToken(ctx, form)
}

// Revoke invalidates a token with the provider.
func (c *Client) Revoke(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", c.basicAuth())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke endpoint returned %d", resp.StatusCode)
	}
	return nil
}

// DailyActivity fetches the summary and activity list for one date
// (YYYY-MM-DD).
func (c *Client) DailyActivity(ctx context.Context, accessToken, date string) (*models.DailyFitbitData, error) {
	u := fmt.Sprintf("%s/activities/date/%s.json", c.apiBaseURL, date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build activity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("activity request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activity endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var day models.DailyFitbitData
	if err := json.Unmarshal(body, &day); err != nil {
		return nil, fmt.Errorf("failed to parse activity response: %w", err)
	}
	if day.Activities == nil {
		day.Activities = []models.FitbitActivity{}
	}
	return &day, nil
}
