package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/catalogsrc"
	server "travel_reco/internal/adapters/http_server"
	"travel_reco/internal/adapters/observability"
	redisad "travel_reco/internal/adapters/redis"
	"travel_reco/internal/app"
	"travel_reco/internal/domain"
	"travel_reco/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	src, err := catalogsrc.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog source")
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; serving without cache")
		} else {
			cache = rc
		}
	}

	store := app.NewCatalogStore(src)
	ctrl := app.NewController(store, app.NewRenderer(nil), cache, cfg.CacheTTL)

	// one background load at startup; a failed load is reported and not retried
	go func() {
		if err := ctrl.LoadCatalog(context.Background()); err != nil {
			log.Error().Err(err).Msg("startup catalog load failed; POST /v1/catalog/load to try again")
		}
	}()

	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: ctrl})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
