package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ewelton/faredrop/internal/handler"
	"github.com/ewelton/faredrop/internal/provider"
	"github.com/ewelton/faredrop/internal/ratelimit"
	"github.com/ewelton/faredrop/internal/refdata"
	"github.com/ewelton/faredrop/internal/search"
	"github.com/ewelton/faredrop/pkg/logger"
)

type Config struct {
	Port              string
	LogLevel          string
	LogFormat         string
	Provider          string
	AmadeusBaseURL    string
	AmadeusAPIKey     string
	AmadeusAPISecret  string
	SkiplaggedBaseURL string
	ProviderTimeout   time.Duration
	WorkerConcurrency int
	CacheEnabled      bool
	RedisHost         string
	RedisPort         string
	RedisTTL          time.Duration
}

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	var store refdata.Store
	if cfg.CacheEnabled {
		redisStore, err := refdata.NewRedisStore(refdata.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal(err, "failed to connect to redis")
		}
		store = redisStore
		log.Info("reference-data cache enabled", "host", cfg.RedisHost+":"+cfg.RedisPort, "ttl", cfg.RedisTTL.String())
	} else {
		store = refdata.NewNoOpStore()
		log.Info("reference-data cache disabled")
	}

	var querier provider.Querier
	var airlineSource refdata.AirlineSource

	switch cfg.Provider {
	case "skiplagged":
		querier = provider.NewSkiplaggedSource(provider.SkiplaggedConfig{
			BaseURL: cfg.SkiplaggedBaseURL,
			Timeout: cfg.ProviderTimeout,
		})
	default:
		if cfg.AmadeusAPIKey == "" || cfg.AmadeusAPISecret == "" {
			log.Fatal(nil, "AMADEUS_API_KEY and AMADEUS_API_SECRET are required")
		}
		amadeus := provider.NewAmadeusClient(provider.AmadeusConfig{
			BaseURL:   cfg.AmadeusBaseURL,
			APIKey:    cfg.AmadeusAPIKey,
			APISecret: cfg.AmadeusAPISecret,
			Timeout:   cfg.ProviderTimeout,
		})
		querier = amadeus
		airlineSource = amadeus
	}

	lookup := refdata.NewCachedLookup(airlineSource, store)

	rateLimiter := ratelimit.NewSourceLimiterWithDefaults()
	rateLimiter.SetSourceLimit("amadeus", 5, 10)
	rateLimiter.SetSourceLimit("skiplagged", 2, 4)

	searcher := search.NewSearcher(querier, lookup, log, search.Config{
		Concurrency:   cfg.WorkerConcurrency,
		OptionTimeout: cfg.ProviderTimeout,
		RateLimiter:   rateLimiter,
	})

	dealHandler := handler.NewDealHandler(searcher, log)

	api := e.Group("/api/v1")
	api.POST("/deals/search", dealHandler.Search)
	e.GET("/health", handler.HealthHandler)

	log.Info("starting deal search server", "port", cfg.Port, "provider", querier.Name())

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err, "server stopped")
	}
}

func loadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		Provider:          getEnv("PRICING_PROVIDER", "amadeus"),
		AmadeusBaseURL:    getEnv("AMADEUS_BASE_URL", ""),
		AmadeusAPIKey:     getEnv("AMADEUS_API_KEY", ""),
		AmadeusAPISecret:  getEnv("AMADEUS_API_SECRET", ""),
		SkiplaggedBaseURL: getEnv("SKIPLAGGED_BASE_URL", ""),
		ProviderTimeout:   getEnvDuration("PROVIDER_TIMEOUT", 20*time.Second),
		WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 2),
		CacheEnabled:      getEnvBool("CACHE_ENABLED", false),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisTTL:          getEnvDuration("REDIS_TTL", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
