// Package aladhan is a small client for the Al Adhan prayer times API.
package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.aladhan.com/v1"

// ErrUpstream marks any failure of the provider: transport errors, non-2xx
// replies, undecodable bodies and envelopes whose code is not 200.
var ErrUpstream = errors.New("prayer times provider failure")

// CityQuery selects the location and calculation parameters of a request.
// Negative Method, School and LatitudeAdjustment leave the provider default.
type CityQuery struct {
	City               string
	Country            string
	Method             int
	School             int
	LatitudeAdjustment int
	// Tune is the provider's comma-separated list of minute offsets
	// (Imsak,Fajr,Sunrise,Dhuhr,Asr,Maghrib,Sunset,Isha,Midnight).
	Tune string
}

// Fetcher fetches one day of timings for a city.
type Fetcher interface {
	FetchByCity(ctx context.Context, date time.Time, q CityQuery) (*Response, error)
}

// Client communicates with the Al Adhan API.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point it at an httptest server.
	BaseURL string
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client whose requests are bounded by timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		BaseURL:    DefaultBaseURL,
	}
}

// FetchByCity fetches the timings of the given calendar date. Only the date
// components of date are used.
func (c *Client) FetchByCity(ctx context.Context, date time.Time, q CityQuery) (*Response, error) {
	endpoint := fmt.Sprintf("%s/timingsByCity/%s", c.BaseURL, date.Format("02-01-2006"))

	params := url.Values{}
	params.Set("city", q.City)
	params.Set("country", q.Country)
	if q.Method >= 0 {
		params.Set("method", strconv.Itoa(q.Method))
	}
	if q.School >= 0 {
		params.Set("school", strconv.Itoa(q.School))
	}
	if q.LatitudeAdjustment >= 0 {
		params.Set("latitudeAdjustmentMethod", strconv.Itoa(q.LatitudeAdjustment))
	}
	if q.Tune != "" {
		params.Set("tune", q.Tune)
	}

	return c.doRequest(ctx, endpoint, params)
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}

	if apiResp.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: code=%d status=%s", ErrUpstream, apiResp.Code, apiResp.Status)
	}

	return &apiResp, nil
}
