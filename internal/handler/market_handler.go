package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bassel-dev/crypto-dashboard/internal/coingecko"
	"github.com/bassel-dev/crypto-dashboard/internal/service"
)

type MarketHandler struct {
	pipeline *service.Pipeline
}

func NewMarketHandler(pipeline *service.Pipeline) *MarketHandler {
	return &MarketHandler{pipeline: pipeline}
}

// GetCoins returns the top coins ordered by market cap
func (h *MarketHandler) GetCoins(c *gin.Context) {
	coins, err := h.pipeline.Coins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": coins})
}

// GetHistory returns normalized historical series for one coin.
// Timeframe comes from the query string and defaults to 7d.
func (h *MarketHandler) GetHistory(c *gin.Context) {
	coinID := c.Param("id")
	timeframe := c.DefaultQuery("timeframe", "7d")

	history, err := h.pipeline.History(c.Request.Context(), coinID, timeframe)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// GetGlobal returns market-wide stats with human-readable amounts
func (h *MarketHandler) GetGlobal(c *gin.Context) {
	stats, err := h.pipeline.Global(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote_currency":             stats.QuoteCurrency,
		"total_market_cap":           stats.TotalMarketCap,
		"total_market_cap_formatted": formatBigNumber(stats.TotalMarketCap, stats.QuoteCurrency),
		"total_volume_24h":           stats.TotalVolume24h,
		"total_volume_24h_formatted": formatBigNumber(stats.TotalVolume24h, stats.QuoteCurrency),
		"btc_dominance":              stats.BTCDominance,
	})
}

// respondError maps pipeline errors onto HTTP responses. The three failure
// kinds are named in the payload so the UI can show which one happened;
// none of them crash the request.
func respondError(c *gin.Context, err error) {
	var upstreamErr *coingecko.UpstreamError
	var malformedErr *coingecko.MalformedError

	switch {
	case errors.Is(err, service.ErrInvalidTimeframe), errors.Is(err, service.ErrEmptyCoinID):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_argument",
			"message": err.Error(),
		})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "upstream",
			"message":         upstreamErr.Error(),
			"upstream_status": upstreamErr.Status,
		})
	case errors.As(err, &malformedErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "malformed",
			"message": malformedErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal",
			"message": "unexpected error",
		})
	}
}
