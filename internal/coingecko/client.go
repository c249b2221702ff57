package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/models"
)

const (
	// DefaultBaseURL is the public CoinGecko v3 API
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	// requestTimeout bounds every upstream call so the caller is never
	// blocked indefinitely
	requestTimeout = 10 * time.Second

	coinsPerPage = 100
)

// Client talks to the CoinGecko REST API. All amounts are quoted in the
// configured quote currency (e.g. "eur").
type Client struct {
	baseURL       string
	quoteCurrency string
	http          *http.Client
}

// NewClient creates a client for the given API base URL and quote currency.
// Empty arguments fall back to DefaultBaseURL and "eur".
func NewClient(baseURL, quoteCurrency string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if quoteCurrency == "" {
		quoteCurrency = "eur"
	}
	return &Client{
		baseURL:       baseURL,
		quoteCurrency: quoteCurrency,
		http:          &http.Client{Timeout: requestTimeout},
	}
}

// QuoteCurrency returns the currency all amounts are quoted in.
func (c *Client) QuoteCurrency() string {
	return c.quoteCurrency
}

// Chart is the raw market_chart payload: [timestamp_ms, value] pairs in
// upstream order. Values are pointers because the API can emit nulls.
type Chart struct {
	Prices       [][]*float64 `json:"prices"`
	MarketCaps   [][]*float64 `json:"market_caps"`
	TotalVolumes [][]*float64 `json:"total_volumes"`
}

// Markets fetches the top coins ordered by market cap descending.
func (c *Client) Markets(ctx context.Context) ([]models.Coin, error) {
	params := url.Values{}
	params.Set("vs_currency", c.quoteCurrency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprintf("%d", coinsPerPage))
	params.Set("page", "1")

	body, err := c.get(ctx, "/coins/markets", params)
	if err != nil {
		return nil, err
	}

	var coins []models.Coin
	if err := json.Unmarshal(body, &coins); err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("decoding coin list: %v", err)}
	}
	return coins, nil
}

// MarketChart fetches historical data for one coin over the given number of
// days. The series come back in upstream order; normalization is the
// caller's job.
func (c *Client) MarketChart(ctx context.Context, coinID string, days int) (*Chart, error) {
	params := url.Values{}
	params.Set("vs_currency", c.quoteCurrency)
	params.Set("days", fmt.Sprintf("%d", days))

	body, err := c.get(ctx, "/coins/"+url.PathEscape(coinID)+"/market_chart", params)
	if err != nil {
		return nil, err
	}

	var chart Chart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("decoding market chart: %v", err)}
	}
	if chart.Prices == nil {
		return nil, &MalformedError{Reason: "market chart response missing prices field"}
	}
	return &chart, nil
}

type globalResponse struct {
	Data *struct {
		TotalMarketCap      map[string]float64 `json:"total_market_cap"`
		TotalVolume         map[string]float64 `json:"total_volume"`
		MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
	} `json:"data"`
}

// Global fetches market-wide totals and BTC dominance.
func (c *Client) Global(ctx context.Context) (*models.GlobalStats, error) {
	body, err := c.get(ctx, "/global", nil)
	if err != nil {
		return nil, err
	}

	var resp globalResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("decoding global stats: %v", err)}
	}
	if resp.Data == nil {
		return nil, &MalformedError{Reason: "global response missing data field"}
	}

	return &models.GlobalStats{
		QuoteCurrency:  c.quoteCurrency,
		TotalMarketCap: resp.Data.TotalMarketCap[c.quoteCurrency],
		TotalVolume24h: resp.Data.TotalVolume[c.quoteCurrency],
		BTCDominance:   resp.Data.MarketCapPercentage["btc"],
	}, nil
}

// get performs a single GET with no retries. A failed attempt is reported
// to the caller immediately.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &UpstreamError{Reason: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Reason: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := http.StatusText(resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests {
			reason = "rate limited"
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Reason: reason}
	}

	return body, nil
}
