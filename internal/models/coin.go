package models

// Coin is one row of the coin listing, ordered by market cap descending
type Coin struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	MarketCapRank  int     `json:"market_cap_rank"`
	High24h        float64 `json:"high_24h"`
	Low24h         float64 `json:"low_24h"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
	TotalVolume    float64 `json:"total_volume"`
}

// GlobalStats summarizes the whole crypto market in the configured quote currency
type GlobalStats struct {
	QuoteCurrency  string  `json:"quote_currency"`
	TotalMarketCap float64 `json:"total_market_cap"`
	TotalVolume24h float64 `json:"total_volume_24h"`
	BTCDominance   float64 `json:"btc_dominance"` // percentage of total market cap
}
