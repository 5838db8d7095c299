package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"

	"travel_reco/internal/domain"
)

// CatalogStore owns the single loaded catalog. It is written once by a
// successful Load and read-only afterwards.
type CatalogStore struct {
	src   domain.CatalogSource
	group singleflight.Group

	mu      sync.RWMutex
	cat     *domain.Catalog
	version string
	state   domain.CatalogState
}

func NewCatalogStore(src domain.CatalogSource) *CatalogStore {
	return &CatalogStore{src: src, state: domain.StateUnset}
}

// Load fetches and parses the dataset. Concurrent callers share the in-flight
// load; once a catalog is published it is returned without refetching.
// Failures are *domain.LoadError and leave the store without a catalog.
// The shared fetch does not inherit the first caller's cancellation; the
// source's own timeout bounds it.
func (s *CatalogStore) Load(ctx context.Context) (*domain.Catalog, error) {
	if c := s.Catalog(); c != nil {
		return c, nil
	}
	v, err, _ := s.group.Do("catalog", func() (any, error) {
		if c := s.Catalog(); c != nil {
			return c, nil
		}
		s.setState(domain.StateLoading)

		raw, err := s.src.Fetch(context.WithoutCancel(ctx))
		if err != nil {
			s.setState(domain.StateFailed)
			return nil, &domain.LoadError{Kind: domain.FetchFailed, Err: err}
		}
		c, err := decodeCatalog(raw)
		if err != nil {
			s.setState(domain.StateFailed)
			return nil, &domain.LoadError{Kind: domain.ParseFailed, Err: err}
		}

		sum := sha1.Sum(raw)
		s.mu.Lock()
		s.cat = c
		s.version = hex.EncodeToString(sum[:8])
		s.state = domain.StateReady
		s.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Catalog), nil
}

// Catalog returns nil until a load has succeeded.
func (s *CatalogStore) Catalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Version is a short content hash of the loaded document, "" while unset.
func (s *CatalogStore) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *CatalogStore) State() domain.CatalogState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *CatalogStore) setState(st domain.CatalogState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// FlattenAll lists all cities (country order, then city order), then all
// temples, then all beaches.
func FlattenAll(c *domain.Catalog) []domain.Destination {
	if c == nil {
		return []domain.Destination{}
	}
	out := make([]domain.Destination, 0, c.Size())
	out = append(out, c.Cities()...)
	out = append(out, c.Temples...)
	out = append(out, c.Beaches...)
	return out
}
