package aladhan

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

// DayFetcher fetches a single day's timings. *Client implements it; tests
// and the provider can substitute their own.
type DayFetcher interface {
	FetchDay(ctx context.Context, q Query) (*Day, error)
}

var _ DayFetcher = (*Client)(nil)

// Client talks to the Al Adhan HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://api.aladhan.com"
	defaultUserAgent = "prayerclock/0.1"
	requestTimeout   = 10 * time.Second
	dateLayout       = "02-01-2006"
)

// Query selects the day and location for a timings request.
type Query struct {
	Date    time.Time
	City    string
	Country string
	Method  int // calculation method id; zero lets the API pick
}

// NewClient builds a Client rooted at base, e.g. "https://api.aladhan.com".
func NewClient(base string) (*Client, error) {
	u, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchDay retrieves the timings for q.Date at q.City, q.Country.
func (c *Client) FetchDay(ctx context.Context, q Query) (*Day, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	city := strings.TrimSpace(q.City)
	country := strings.TrimSpace(q.Country)
	if city == "" || country == "" {
		return nil, fmt.Errorf("city and country required")
	}
	date := q.Date
	if date.IsZero() {
		date = time.Now()
	}

	values := url.Values{}
	values.Set("city", city)
	values.Set("country", country)
	if q.Method > 0 {
		values.Set("method", strconv.Itoa(q.Method))
	}
	rel := &url.URL{
		Path:     "/v1/timingsByCity/" + date.Format(dateLayout),
		RawQuery: values.Encode(),
	}

	var payload Response
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	if payload.Code != http.StatusOK {
		return nil, fmt.Errorf("api returned code %d: %s", payload.Code, payload.Status)
	}
	if len(payload.Data.Timings) == 0 {
		return nil, fmt.Errorf("api returned no timings")
	}
	return &payload.Data, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("api %s returned status %d: %s", rel.Path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", base, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", base)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
