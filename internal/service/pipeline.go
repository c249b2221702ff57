package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/bassel-dev/crypto-dashboard/internal/coingecko"
	"github.com/bassel-dev/crypto-dashboard/internal/models"
)

// Default TTLs follow the upstream free-tier limits: the coin listing
// changes slowly and is fetched on every page load, so it gets the longer
// window.
const (
	DefaultCoinsTTL   = 10 * time.Minute
	DefaultHistoryTTL = 5 * time.Minute
	DefaultGlobalTTL  = 5 * time.Minute
)

// Config holds the cache TTLs. Zero values fall back to the defaults.
type Config struct {
	CoinsTTL   time.Duration
	HistoryTTL time.Duration
	GlobalTTL  time.Duration
}

// Pipeline fetches market data from the upstream API, normalizes it, and
// caches each result under a short TTL. Every operation performs at most
// one upstream call and never retries; a failed attempt is reported to the
// caller immediately. When a refresh fails, any stale cached value is NOT
// served — the error is surfaced instead.
type Pipeline struct {
	source *coingecko.Client
	cache  Cache
	cfg    Config
}

func NewPipeline(source *coingecko.Client, cache Cache, cfg Config) *Pipeline {
	if cfg.CoinsTTL == 0 {
		cfg.CoinsTTL = DefaultCoinsTTL
	}
	if cfg.HistoryTTL == 0 {
		cfg.HistoryTTL = DefaultHistoryTTL
	}
	if cfg.GlobalTTL == 0 {
		cfg.GlobalTTL = DefaultGlobalTTL
	}
	return &Pipeline{source: source, cache: cache, cfg: cfg}
}

// Coins returns the top coins by market cap, cached under CoinsTTL.
func (p *Pipeline) Coins(ctx context.Context) ([]models.Coin, error) {
	key := "coins:markets:" + p.source.QuoteCurrency()

	var cached []models.Coin
	if p.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	coins, err := p.source.Markets(ctx)
	if err != nil {
		return nil, err
	}

	p.cacheSet(ctx, key, coins, p.cfg.CoinsTTL)
	return coins, nil
}

// History returns normalized historical series for one coin and timeframe.
// An invalid timeframe or empty coin id fails immediately with no network
// call. A cache hit within HistoryTTL also makes no network call.
func (p *Pipeline) History(ctx context.Context, coinID string, timeframe string) (*models.CoinHistory, error) {
	if coinID == "" {
		return nil, ErrEmptyCoinID
	}
	tf, ok := models.ParseTimeframe(timeframe)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeframe, timeframe)
	}

	key := fmt.Sprintf("history:%s:%s:%s", p.source.QuoteCurrency(), coinID, tf)

	var cached models.CoinHistory
	if p.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	chart, err := p.source.MarketChart(ctx, coinID, tf.Days())
	if err != nil {
		return nil, err
	}

	history := &models.CoinHistory{
		CoinID:       coinID,
		Timeframe:    tf,
		Prices:       normalizeSeries(chart.Prices),
		MarketCaps:   normalizeSeries(chart.MarketCaps),
		TotalVolumes: normalizeSeries(chart.TotalVolumes),
	}

	p.cacheSet(ctx, key, history, p.cfg.HistoryTTL)
	return history, nil
}

// Global returns market-wide stats, cached under GlobalTTL.
func (p *Pipeline) Global(ctx context.Context) (*models.GlobalStats, error) {
	key := "global:" + p.source.QuoteCurrency()

	var cached models.GlobalStats
	if p.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	stats, err := p.source.Global(ctx)
	if err != nil {
		return nil, err
	}

	p.cacheSet(ctx, key, stats, p.cfg.GlobalTTL)
	return stats, nil
}

// normalizeSeries turns raw [timestamp_ms, value] pairs into a
// MarketSeries: millisecond timestamps become UTC instants, points with a
// missing or non-finite value are dropped, and the result is sorted
// ascending because upstream order is not trusted.
func normalizeSeries(pairs [][]*float64) models.MarketSeries {
	series := make(models.MarketSeries, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 || pair[0] == nil || pair[1] == nil {
			continue
		}
		price := *pair[1]
		if math.IsNaN(price) || math.IsInf(price, 0) {
			continue
		}
		series = append(series, models.MarketPoint{
			Timestamp: time.UnixMilli(int64(*pair[0])).UTC(),
			Price:     price,
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})
	return series
}

// cacheGet reports whether key held a fresh entry that decoded into dest.
// Cache failures are logged and treated as misses so a broken cache
// backend never takes the pipeline down.
func (p *Pipeline) cacheGet(ctx context.Context, key string, dest any) bool {
	data, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Printf("cache get failed for %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache entry for %s is undecodable, refetching: %v", key, err)
		return false
	}
	return true
}

func (p *Pipeline) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache marshal failed for %s: %v", key, err)
		return
	}
	if err := p.cache.Set(ctx, key, data, ttl); err != nil {
		log.Printf("cache set failed for %s: %v", key, err)
	}
}
