// Package fmp is a thin typed client for the Financial Modeling Prep v3 REST
// API. It does request construction, status checking and envelope decoding;
// all policy (fallbacks, merging, ordering) lives in the gateway.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client issues authenticated GET requests against the FMP API.
//
// The zero value is not usable; construct with New. BaseURL is injectable so
// tests can point the client at an httptest server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a Client for the given API root and credential.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// StatusError reports a non-2xx upstream response. The gateway logs the code
// and collapses the call to its empty result.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fmp: %s returned status %d", e.Endpoint, e.Code)
}

// QuoteRow mirrors one element of the /quote/{symbol} response.
type QuoteRow struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Change            float64 `json:"change"`
	ChangesPercentage float64 `json:"changesPercentage"`
	MarketCap         float64 `json:"marketCap"`
	Volume            float64 `json:"volume"`
	PE                float64 `json:"pe"`
	YearHigh          float64 `json:"yearHigh"`
	YearLow           float64 `json:"yearLow"`
}

// KeyMetricsRow mirrors one element of the /key-metrics-ttm/{symbol} response.
// Only the dividend yield is consumed; the quote endpoint does not carry it.
type KeyMetricsRow struct {
	DividendYieldTTM float64 `json:"dividendYieldTTM"`
}

// HistoricalRow is one daily bar inside the /historical-price-full envelope.
type HistoricalRow struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// HistoricalEnvelope is the /historical-price-full/{symbol} response shape.
// Symbol is set (and Historical empty) for a valid ticker with no data in
// range; both empty means the payload shape was not recognized.
type HistoricalEnvelope struct {
	Symbol     string          `json:"symbol"`
	Historical []HistoricalRow `json:"historical"`
}

// IntradayRow is one bar of the /historical-chart/{interval}/{symbol} response.
type IntradayRow struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

// SearchRow mirrors one element of the /search-ticker response.
type SearchRow struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	StockExchange     string `json:"stockExchange"`
	ExchangeShortName string `json:"exchangeShortName"`
}

// MoverRow mirrors one element of the /stock_market/gainers and /losers
// responses. Only symbol/name/price/change come back; full metrics require a
// follow-up quote call per symbol.
type MoverRow struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Change            float64 `json:"change"`
	ChangesPercentage float64 `json:"changesPercentage"`
}

// Quote fetches the /quote rows for a single symbol.
func (c *Client) Quote(ctx context.Context, symbol string) ([]QuoteRow, error) {
	var rows []QuoteRow
	if err := c.get(ctx, "/quote/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// KeyMetricsTTM fetches trailing-twelve-month key metrics for a symbol.
func (c *Client) KeyMetricsTTM(ctx context.Context, symbol string) ([]KeyMetricsRow, error) {
	var rows []KeyMetricsRow
	if err := c.get(ctx, "/key-metrics-ttm/"+url.PathEscape(symbol), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// HistoricalDaily fetches the daily-close envelope. from/to bound the range
// in YYYY-MM-DD; both empty requests the full available history.
func (c *Client) HistoricalDaily(ctx context.Context, symbol, from, to string) (*HistoricalEnvelope, error) {
	params := url.Values{}
	if from != "" {
		params.Set("from", from)
	}
	if to != "" {
		params.Set("to", to)
	}
	var env HistoricalEnvelope
	if err := c.get(ctx, "/historical-price-full/"+url.PathEscape(symbol), params, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Intraday fetches sub-daily bars for the current session. interval is an FMP
// chart granularity such as "15min".
func (c *Client) Intraday(ctx context.Context, symbol, interval string) ([]IntradayRow, error) {
	var rows []IntradayRow
	path := "/historical-chart/" + url.PathEscape(interval) + "/" + url.PathEscape(symbol)
	if err := c.get(ctx, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchTicker performs a free-text ticker search capped at limit results.
func (c *Client) SearchTicker(ctx context.Context, query string, searchLimit int) ([]SearchRow, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", searchLimit))
	var rows []SearchRow
	if err := c.get(ctx, "/search-ticker", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Gainers fetches the market gainers list.
func (c *Client) Gainers(ctx context.Context) ([]MoverRow, error) {
	var rows []MoverRow
	if err := c.get(ctx, "/stock_market/gainers", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Losers fetches the market losers list.
func (c *Client) Losers(ctx context.Context) ([]MoverRow, error) {
	var rows []MoverRow
	if err := c.get(ctx, "/stock_market/losers", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping issues a minimal authenticated call, used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var rows []QuoteRow
	return c.get(ctx, "/quote/AAPL", nil, &rows)
}

// get performs an authenticated GET against path and decodes the JSON body
// into out. Non-2xx statuses become *StatusError; the body is drained so the
// transport can reuse the connection.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("fmp: build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fmp: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Endpoint: path, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fmp: decode %s: %w", path, err)
	}
	return nil
}
