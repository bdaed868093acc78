// Package marketplace is a minimal client for the sales-marketplace API:
// OAuth token exchange/refresh, seller identity and order fetch.
package marketplace

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	tokenPath    = "/identity/v1/oauth2/token"
	identityPath = "/commerce/identity/v1/user"
	ordersPath   = "/sell/fulfillment/v1/order"

	pageLimit          = 200
	maxAPIResponseSize = 4 * 1024 * 1024 // 4MB
)

// Client talks to the marketplace REST API.
type Client struct {
	baseURL      string
	authBaseURL  string
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

// NewClient creates a marketplace client.
func NewClient(baseURL, authBaseURL, clientID, clientSecret, redirectURI string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		authBaseURL:  strings.TrimRight(authBaseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// ExchangeCode exchanges an authorization code for a token grant.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenGrant, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {c.redirectURI},
	}
	return c.tokenRequest(ctx, form)
}

// RefreshAccessToken redeems a refresh token for a fresh access token.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrant, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	return c.tokenRequest(ctx, form)
}

func (c *Client) tokenRequest(ctx context.Context, form url.Values) (*TokenGrant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var grant TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}
	return &grant, nil
}

// GetAccountIdentity returns the seller account behind an access token.
func (c *Client) GetAccountIdentity(ctx context.Context, accessToken string) (*AccountIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+identityPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var identity AccountIdentity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	return &identity, nil
}

// ValidateToken reports whether an access token is currently accepted.
func (c *Client) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	_, err := c.GetAccountIdentity(ctx, accessToken)
	if err != nil {
		return false, err
	}
	return true, nil
}

// FetchOrders pages through orders created inside [start, end].
func (c *Client) FetchOrders(ctx context.Context, accessToken string, start, end time.Time) ([]Order, error) {
	filter := fmt.Sprintf("creationdate:[%s..%s]",
		start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))

	var all []Order
	offset := 0
	for {
		q := url.Values{
			"filter": {filter},
			"limit":  {strconv.Itoa(pageLimit)},
			"offset": {strconv.Itoa(offset)},
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ordersPath+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)

		body, err := c.do(req)
		if err != nil {
			return nil, err
		}
		var page ordersPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode orders response: %w", err)
		}
		all = append(all, page.Orders...)
		offset += len(page.Orders)
		if len(page.Orders) < pageLimit || offset >= page.Total {
			break
		}
	}
	return all, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAPIResponseSize))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("marketplace API %s: status %d: %s", req.URL.Path, resp.StatusCode, truncate(string(body), 256))
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
