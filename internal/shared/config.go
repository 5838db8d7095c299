package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	CatalogSrc   string
	CatalogDSN   string
	CatalogName  string
	FetchTimeout time.Duration
	CatalogRPS   int
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheTTL     time.Duration
	WarmWorkers  int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer env value")
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		CatalogSrc:   env("CATALOG_SOURCE", "./travel_recommendation_api.json"),
		CatalogDSN:   os.Getenv("CATALOG_MYSQL_DSN"),
		CatalogName:  env("CATALOG_NAME", "default"),
		FetchTimeout: time.Duration(atoi("CATALOG_FETCH_TIMEOUT_SECONDS", 20)) * time.Second,
		CatalogRPS:   atoi("CATALOG_RPS", 5),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:      atoi("REDIS_DB", 0),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		WarmWorkers:  atoi("WARM_WORKERS", 8),
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; view cache disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
