package domain

import "context"

// CatalogSource returns the raw dataset document.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
