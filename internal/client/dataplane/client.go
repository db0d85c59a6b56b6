package dataplane

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketdash/internal/models"
)

// APIKeyHeader carries the static data-plane credential. The key travels
// only in this header, never in the query string or body.
const APIKeyHeader = "X-API-Key"

// Client talks to the trading data-plane API. All substantive work
// (ingest, features, storage, paper trading) happens on the other side of
// this client; marketdash only reads.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// APIError is an upstream non-2xx response with its original status and
// body preserved, so the gateway can pass both through.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Forward issues a GET and returns the upstream status and raw body.
// err is non-nil only for transport-level failures; HTTP errors come back
// as a status code with the body intact.
func (c *Client) Forward(ctx context.Context, path string, query url.Values) (int, []byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, dest any) error {
	status, body, err := c.Forward(ctx, path, query)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &APIError{Status: status, Body: string(body)}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// Stats fetches the aggregate counter snapshot.
func (c *Client) Stats(ctx context.Context) (*models.StatsResponse, error) {
	var out models.StatsResponse
	if err := c.getJSON(ctx, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StreamLag fetches the per-stream lag snapshot.
func (c *Client) StreamLag(ctx context.Context) (*models.StreamLagSnapshot, error) {
	var out models.StreamLagSnapshot
	if err := c.getJSON(ctx, "/api/stream-lag", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventsQuery selects a slice of the market-event feed. Zero values mean
// "no filter" upstream except Limit, which the caller should always set.
type EventsQuery struct {
	Type   string
	Limit  int
	Hours  int
	MinRet float64
}

// Values encodes the query the way the upstream expects it. hours=0 is
// sent explicitly: it means "no time window", not "last zero hours".
func (q EventsQuery) Values() url.Values {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	v.Set("hours", strconv.Itoa(q.Hours))
	if q.MinRet > 0 {
		v.Set("min_ret", strconv.FormatFloat(q.MinRet, 'f', -1, 64))
	}
	return v
}

// MarketEvents fetches one filtered page of the event feed, most recent
// first by detection time.
func (c *Client) MarketEvents(ctx context.Context, q EventsQuery) ([]models.MarketEvent, error) {
	var out []models.MarketEvent
	if err := c.getJSON(ctx, "/api/market-events", q.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Strategies fetches the per-strategy paper-trading summaries.
func (c *Client) Strategies(ctx context.Context) ([]models.StrategySummary, error) {
	var out []models.StrategySummary
	if err := c.getJSON(ctx, "/api/strategies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
