// Package invoicing is a minimal client for the invoicing-service API.
// The provider issues long-lived personal access tokens, so there is no
// refresh flow; ValidateToken plus invoice fetch is the whole surface.
package invoicing

import (
	"context"
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
	profilePath  = "/v1/businesses/current"
	invoicesPath = "/v1/invoices"

	pageSize           = 100
	maxAPIResponseSize = 4 * 1024 * 1024 // 4MB
)

// Client talks to the invoicing REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an invoicing client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ValidateToken checks the personal access token by loading the business
// profile behind it.
func (c *Client) ValidateToken(ctx context.Context, accessToken string) (bool, error) {
	_, err := c.GetBusinessProfile(ctx, accessToken)
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetBusinessProfile returns the business the token belongs to.
func (c *Client) GetBusinessProfile(ctx context.Context, accessToken string) (*BusinessProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var profile BusinessProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	return &profile, nil
}

// FetchInvoices pages through invoices issued inside [start, end].
func (c *Client) FetchInvoices(ctx context.Context, accessToken, businessID string, start, end time.Time) ([]Invoice, error) {
	var all []Invoice
	page := 1
	for {
		q := url.Values{
			"invoiceDateStart": {start.UTC().Format("2006-01-02")},
			"invoiceDateEnd":   {end.UTC().Format("2006-01-02")},
			"page":             {strconv.Itoa(page)},
			"pageSize":         {strconv.Itoa(pageSize)},
		}
		if businessID != "" {
			q.Set("businessId", businessID)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+invoicesPath+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)

		body, err := c.do(req)
		if err != nil {
			return nil, err
		}
		var pg invoicesPage
		if err := json.Unmarshal(body, &pg); err != nil {
			return nil, fmt.Errorf("decode invoices response: %w", err)
		}
		all = append(all, pg.Invoices...)
		if len(pg.Invoices) < pageSize || len(all) >= pg.Total {
			break
		}
		page++
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
		return nil, fmt.Errorf("invoicing API %s: status %d: %s", req.URL.Path, resp.StatusCode, truncate(string(body), 256))
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
