package models

import "time"

// MarketPoint is a single (timestamp, value) observation. Timestamps are UTC.
type MarketPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// MarketSeries is ordered by timestamp ascending. It is built fresh on every
// successful fetch and never mutated afterwards.
type MarketSeries []MarketPoint

// CoinHistory holds the three normalized series the upstream market_chart
// payload carries for one coin and timeframe.
type CoinHistory struct {
	CoinID       string       `json:"coin_id"`
	Timeframe    Timeframe    `json:"timeframe"`
	Prices       MarketSeries `json:"prices"`
	MarketCaps   MarketSeries `json:"market_caps"`
	TotalVolumes MarketSeries `json:"total_volumes"`
}
