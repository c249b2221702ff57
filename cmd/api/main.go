package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bassel-dev/crypto-dashboard/internal/coingecko"
	"github.com/bassel-dev/crypto-dashboard/internal/data"
	"github.com/bassel-dev/crypto-dashboard/internal/handler"
	"github.com/bassel-dev/crypto-dashboard/internal/middleware"
	"github.com/bassel-dev/crypto-dashboard/internal/routes"
	"github.com/bassel-dev/crypto-dashboard/internal/service"
)

func main() {
	godotenv.Load()

	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Upstream market data client
	client := coingecko.NewClient(
		os.Getenv("COINGECKO_BASE_URL"),
		os.Getenv("QUOTE_CURRENCY"),
	)

	// Cache backend: process-local by default, Redis when configured.
	// If Redis is unreachable we fall back rather than refuse to start.
	var cache service.Cache = service.NewMemoryCache()
	if os.Getenv("CACHE_BACKEND") == "redis" {
		rdb, err := data.NewRedisClient()
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v. Falling back to in-memory cache.", err)
		} else {
			defer rdb.Close()
			cache = service.NewRedisCache(rdb)
		}
	}

	pipeline := service.NewPipeline(client, cache, service.Config{
		CoinsTTL:   envSeconds("CACHE_TTL_COINS"),
		HistoryTTL: envSeconds("CACHE_TTL_HISTORY"),
		GlobalTTL:  envSeconds("CACHE_TTL_GLOBAL"),
	})

	handle := handler.NewHandler(pipeline)

	routes.HealthRoutes(r) // Public health check for ECS/Docker
	routes.MarketRoutes(r, handle)

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// envSeconds reads an env var holding a number of seconds. Missing or
// invalid values return 0, which means "use the built-in default".
func envSeconds(name string) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("Warning: ignoring invalid %s value %q", name, raw)
		return 0
	}
	return time.Duration(secs) * time.Second
}
