// Command warmer loads the catalog once and pre-renders the common searches
// into the shared Redis view cache.
package main

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_reco/internal/adapters/catalogsrc"
	"travel_reco/internal/adapters/observability"
	redisad "travel_reco/internal/adapters/redis"
	"travel_reco/internal/app"
	"travel_reco/internal/domain"
	"travel_reco/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.RedisAddr == "" {
		log.Fatal().Msg("REDIS_ADDR is required for warming")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	src, err := catalogsrc.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog source")
	}
	store := app.NewCatalogStore(src)
	ctrl := app.NewController(store, app.NewRenderer(nil), cache, cfg.CacheTTL)
	if err := ctrl.LoadCatalog(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	queries := warmQueries(store.Catalog())
	log.Info().
		Int("queries", len(queries)).
		Int("workers", cfg.WarmWorkers).
		Str("version", store.Version()).
		Msg("warmer starting")

	workers := cfg.WarmWorkers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, q := range queries {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			defer sem.Release(1)

			v := ctrl.Search(ctx, q)
			log.Debug().Str("query", q).Int("cards", len(v.Cards)).Msg("warmed")
		}(q)
	}

	wg.Wait()
	log.Info().Msg("warming completed")
}

// warmQueries lists the default view, the category keywords, every country
// name and the leading name segment of every destination, without repeats.
func warmQueries(c *domain.Catalog) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(q string) {
		q = strings.TrimSpace(q)
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}

	add("")
	for _, kw := range app.Keywords() {
		add(kw)
	}
	for _, country := range c.Countries {
		add(country.Name)
	}
	for _, d := range app.FlattenAll(c) {
		name := d.Name
		if i := strings.IndexByte(name, ','); i >= 0 {
			name = name[:i]
		}
		add(name)
	}
	return out
}
