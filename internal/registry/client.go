// Package registry implements a rate-limited, retry-aware client for the
// Companies House public data API.
//
// Absence is never fatal here: a missing resource (404/416), an unexpected
// status, or a transport failure all decode to "no data" so that every
// downstream component degrades to partial results instead of aborting the
// pipeline. The only error surfaced from this package is an exhausted
// rate-limit retry.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/calhoward/officertrail/internal/common"
)

// DefaultBaseURL is the public Companies House data API.
const DefaultBaseURL = "https://api.company-information.service.gov.uk"

const (
	defaultTimeout   = 10 * time.Second
	defaultRateDelay = 250 * time.Millisecond
	defaultCooldown  = 2 * time.Second
	defaultAttempts  = 3

	searchPageSize      = 50
	searchMaxPages      = 10
	appointmentPageSize = 50
	officersPageSize    = 100
)

// Config holds client configuration.
type Config struct {
	// APIKey is the registry key, sent as the basic-auth username with an
	// empty password.
	APIKey  string
	BaseURL string
	// RateDelay is the minimum gap enforced before every request.
	RateDelay time.Duration
	// Cooldown is the wait applied between 429 retries.
	Cooldown time.Duration
	// MaxAttempts bounds 429 retries for a single logical request.
	MaxAttempts int
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client is a synchronous accessor to the registry's read endpoints.
type Client struct {
	httpClient *http.Client
	limiter    *limiter
	baseURL    string
	apiKey     string
	retryOpts  common.RetryOptions
}

// NewClient creates a registry client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, common.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RateDelay <= 0 {
		cfg.RateDelay = defaultRateDelay
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = defaultCooldown
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultAttempts
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		httpClient: httpClient,
		limiter:    newLimiter(cfg.RateDelay),
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		retryOpts: common.RetryOptions{
			MaxAttempts: cfg.MaxAttempts,
			Delay:       cfg.Cooldown,
		},
	}, nil
}

// CompanyProfile fetches a company's profile. Returns (nil, nil) when the
// company does not exist.
func (c *Client) CompanyProfile(ctx context.Context, companyNumber string) (*CompanyProfile, error) {
	body, err := c.get(ctx, "/company/"+companyNumber, nil)
	if err != nil || body == nil {
		return nil, err
	}

	var profile CompanyProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		slog.Warn("Failed to decode company profile", "company_number", companyNumber, "error", err)
		return nil, nil
	}
	return &profile, nil
}

// Officers fetches the company's officer list.
func (c *Client) Officers(ctx context.Context, companyNumber string) ([]OfficerItem, error) {
	params := url.Values{}
	params.Set("items_per_page", strconv.Itoa(officersPageSize))

	body, err := c.get(ctx, "/company/"+companyNumber+"/officers", params)
	if err != nil || body == nil {
		return nil, err
	}

	var list struct {
		Items []OfficerItem `json:"items"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		slog.Warn("Failed to decode officer list", "company_number", companyNumber, "error", err)
		return nil, nil
	}
	return list.Items, nil
}

// PSCs fetches the company's persons-with-significant-control list.
func (c *Client) PSCs(ctx context.Context, companyNumber string) ([]PSCItem, error) {
	body, err := c.get(ctx, "/company/"+companyNumber+"/persons-with-significant-control", nil)
	if err != nil || body == nil {
		return nil, err
	}

	var list struct {
		Items []PSCItem `json:"items"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		slog.Warn("Failed to decode PSC list", "company_number", companyNumber, "error", err)
		return nil, nil
	}
	return list.Items, nil
}

// SearchOfficers pages through the officer-search index for one query,
// capped at searchMaxPages pages.
func (c *Client) SearchOfficers(ctx context.Context, query string) ([]OfficerSearchHit, error) {
	params := url.Values{}
	params.Set("q", query)

	pages, err := c.fetchPaged(ctx, "/search/officers", params, searchPageSize, searchMaxPages)
	if err != nil {
		return nil, err
	}

	hits := make([]OfficerSearchHit, 0, len(pages))
	for _, raw := range pages {
		var hit OfficerSearchHit
		if err := json.Unmarshal(raw, &hit); err != nil {
			slog.Debug("Skipping undecodable search hit", "query", query, "error", err)
			continue
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Appointments pages through an officer's full appointment history.
func (c *Client) Appointments(ctx context.Context, officerID string) ([]AppointmentItem, error) {
	pages, err := c.fetchPaged(ctx, "/officers/"+officerID+"/appointments", nil, appointmentPageSize, 0)
	if err != nil {
		return nil, err
	}

	items := make([]AppointmentItem, 0, len(pages))
	for _, raw := range pages {
		var item AppointmentItem
		if err := json.Unmarshal(raw, &item); err != nil {
			slog.Debug("Skipping undecodable appointment", "officer_id", officerID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// HasInsolvency reports whether the company has any recorded insolvency
// cases. Absence of the resource means no history.
func (c *Client) HasInsolvency(ctx context.Context, companyNumber string) (bool, error) {
	body, err := c.get(ctx, "/company/"+companyNumber+"/insolvency", nil)
	if err != nil || body == nil {
		return false, err
	}

	var resp insolvencyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		slog.Warn("Failed to decode insolvency response", "company_number", companyNumber, "error", err)
		return false, nil
	}
	return len(resp.Cases) > 0, nil
}

// pagedEnvelope is the common shape of the registry's list endpoints.
type pagedEnvelope struct {
	Items        []json.RawMessage `json:"items"`
	TotalResults int               `json:"total_results"`
}

// fetchPaged walks a list endpoint page by page, raising start_index by
// pageSize until a short page arrives or the reported total is covered.
// maxPages caps the walk; zero means unbounded. Both paged call sites
// (officer search and appointment history) share this loop so their stop
// heuristics cannot drift apart.
func (c *Client) fetchPaged(ctx context.Context, path string, base url.Values, pageSize, maxPages int) ([]json.RawMessage, error) {
	var all []json.RawMessage

	for page := 0; maxPages == 0 || page < maxPages; page++ {
		params := url.Values{}
		for k, vs := range base {
			params[k] = vs
		}
		params.Set("items_per_page", strconv.Itoa(pageSize))
		params.Set("start_index", strconv.Itoa(page*pageSize))

		body, err := c.get(ctx, path, params)
		if err != nil {
			return all, err
		}
		if body == nil {
			break
		}

		var envelope pagedEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			slog.Warn("Failed to decode paged response", "path", path, "error", err)
			break
		}
		if len(envelope.Items) == 0 {
			break
		}

		all = append(all, envelope.Items...)

		if len(envelope.Items) < pageSize || envelope.TotalResults <= (page+1)*pageSize {
			break
		}
	}

	return all, nil
}

// get performs one logical request, retrying 429 responses with a fixed
// cooldown up to the configured attempt cap.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	var body []byte

	operation := func() error {
		b, err := c.getOnce(ctx, path, params)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	if err := common.WithRetry(ctx, operation, c.retryOpts); err != nil {
		return nil, err
	}
	return body, nil
}

// getOnce issues a single HTTP request. A 200 returns the body; 404 and
// 416 return (nil, nil); 429 returns ErrRateLimited for WithRetry; any
// other status or transport failure collapses to (nil, nil).
func (c *Client) getOnce(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("Registry request failed", "path", path, "error", err)
		return nil, nil
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			slog.Warn("Failed to read registry response", "path", path, "error", err)
			return nil, nil
		}
		return body, nil
	case http.StatusNotFound, http.StatusRequestedRangeNotSatisfiable:
		return nil, nil
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s", common.ErrRateLimited, path)
	default:
		slog.Warn("Unexpected registry status", "path", path, "status", resp.StatusCode)
		return nil, nil
	}
}
