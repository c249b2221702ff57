package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bassel-dev/crypto-dashboard/internal/handler"
)

func HealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func MarketRoutes(r *gin.Engine, h *handler.Handler) {
	api := r.Group("/api")
	{
		api.GET("/coins", h.MarketHandler.GetCoins)
		api.GET("/coins/:id/history", h.MarketHandler.GetHistory)
		api.GET("/global", h.MarketHandler.GetGlobal)
	}
}
