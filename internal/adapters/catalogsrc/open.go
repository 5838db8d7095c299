package catalogsrc

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"travel_reco/internal/domain"
	"travel_reco/internal/shared"
	mysqlsrc "travel_reco/internal/storage/mysql"
)

// Open builds the configured source: MySQL when a DSN is set, else the
// file or HTTP location.
func Open(ctx context.Context, cfg shared.Config) (domain.CatalogSource, error) {
	if cfg.CatalogDSN != "" {
		db, err := sql.Open("mysql", cfg.CatalogDSN)
		if err != nil {
			return nil, fmt.Errorf("open catalog db: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping catalog db: %w", err)
		}
		log.Info().Str("name", cfg.CatalogName).Msg("catalog source: mysql")
		return mysqlsrc.New(db, cfg.CatalogName), nil
	}
	src, err := New(cfg.CatalogSrc, cfg.FetchTimeout, cfg.CatalogRPS)
	if err != nil {
		return nil, err
	}
	log.Info().Str("location", cfg.CatalogSrc).Msg("catalog source")
	return src, nil
}
