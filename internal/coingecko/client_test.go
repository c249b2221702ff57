package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMarketsDecodesListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("vs_currency"); got != "eur" {
			t.Errorf("vs_currency = %q, want eur", got)
		}
		w.Write([]byte(`[
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":54321.5,"market_cap":1000000000,"market_cap_rank":1,"price_change_percentage_24h":-1.2},
			{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3210.0,"market_cap":400000000,"market_cap_rank":2,"price_change_percentage_24h":2.5}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	coins, err := client.Markets(context.Background())
	if err != nil {
		t.Fatalf("Markets failed: %v", err)
	}
	if len(coins) != 2 {
		t.Fatalf("got %d coins, want 2", len(coins))
	}
	if coins[0].ID != "bitcoin" || coins[0].CurrentPrice != 54321.5 {
		t.Errorf("unexpected first coin: %+v", coins[0])
	}
}

func TestMarketChartDecodesPairs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("days"); got != "7" {
			t.Errorf("days = %q, want 7", got)
		}
		w.Write([]byte(`{
			"prices":[[1700000000000,50000.1],[1700003600000,50100.2]],
			"market_caps":[[1700000000000,900000000]],
			"total_volumes":[[1700000000000,12345678]]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	chart, err := client.MarketChart(context.Background(), "bitcoin", 7)
	if err != nil {
		t.Fatalf("MarketChart failed: %v", err)
	}
	if len(chart.Prices) != 2 {
		t.Fatalf("got %d price pairs, want 2", len(chart.Prices))
	}
	if *chart.Prices[1][1] != 50100.2 {
		t.Errorf("second price = %v, want 50100.2", *chart.Prices[1][1])
	}
}

func TestMarketChartMissingPricesIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foo": 1}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	_, err := client.MarketChart(context.Background(), "bitcoin", 7)

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want MalformedError", err)
	}
}

func TestMarketChartUndecodableBodyIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	_, err := client.MarketChart(context.Background(), "bitcoin", 7)

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want MalformedError", err)
	}
}

func TestNonSuccessStatusIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	_, err := client.MarketChart(context.Background(), "bitcoin", 7)

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
	if upstream.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", upstream.Status)
	}
	if !upstream.RateLimited() {
		t.Error("RateLimited() = false, want true")
	}
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "eur")
	_, err := client.Markets(context.Background())

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("got %v, want UpstreamError", err)
	}
	if upstream.Status != 0 {
		t.Errorf("status = %d, want 0 for transport failure", upstream.Status)
	}
}

func TestGlobalPicksQuoteCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/global" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":{
			"total_market_cap":{"eur":3200000000000,"usd":3500000000000},
			"total_volume":{"eur":98000000000,"usd":105000000000},
			"market_cap_percentage":{"btc":54.2,"eth":17.1}
		}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	stats, err := client.Global(context.Background())
	if err != nil {
		t.Fatalf("Global failed: %v", err)
	}
	if stats.TotalMarketCap != 3200000000000 {
		t.Errorf("TotalMarketCap = %v, want eur value", stats.TotalMarketCap)
	}
	if stats.BTCDominance != 54.2 {
		t.Errorf("BTCDominance = %v, want 54.2", stats.BTCDominance)
	}
	if stats.QuoteCurrency != "eur" {
		t.Errorf("QuoteCurrency = %q, want eur", stats.QuoteCurrency)
	}
}

func TestGlobalMissingDataIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "eur")
	_, err := client.Global(context.Background())

	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("got %v, want MalformedError", err)
	}
}
