package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/domain"
)

// Controller turns user commands (load, search, clear) into views. It owns the
// catalog store and keeps the most recent view as the current results area.
type Controller struct {
	store    *CatalogStore
	renderer *Renderer
	cache    domain.Cache
	cacheTTL time.Duration

	mu      sync.Mutex
	current domain.View
}

// NewController accepts a nil cache.
func NewController(store *CatalogStore, r *Renderer, cache domain.Cache, ttl time.Duration) *Controller {
	c := &Controller{store: store, renderer: r, cache: cache, cacheTTL: ttl}
	c.current = c.Search(context.Background(), "")
	return c
}

// LoadCatalog loads the dataset and shows the default recommendations.
// On failure the previous (unset) state stays in place.
func (c *Controller) LoadCatalog(ctx context.Context) error {
	start := time.Now()
	cat, err := c.store.Load(ctx)
	if err != nil {
		kind := domain.LoadErrorKindOf(err)
		observability.ObserveCatalogLoad(kind.String(), time.Since(start))
		log.Error().Err(err).Str("kind", kind.String()).Msg("catalog load failed")
		c.setCurrent(c.Search(ctx, ""))
		return err
	}
	observability.ObserveCatalogLoad("ok", time.Since(start))
	log.Info().
		Int("countries", len(cat.Countries)).
		Int("destinations", cat.Size()).
		Str("version", c.store.Version()).
		Msg("catalog loaded")
	c.setCurrent(c.Search(ctx, ""))
	return nil
}

func (c *Controller) OnSearch(ctx context.Context, text string) domain.View {
	v := c.Search(ctx, text)
	c.setCurrent(v)
	return v
}

// OnClear drops the query text and shows the default recommendations.
func (c *Controller) OnClear(ctx context.Context) domain.View {
	return c.OnSearch(ctx, "")
}

func (c *Controller) Current() domain.View {
	c.mu.Lock()
	v := c.current
	c.mu.Unlock()
	v.Cards = c.renderer.Restamp(v.Cards)
	return v
}

// Search renders the view for text without touching the current view.
func (c *Controller) Search(ctx context.Context, text string) domain.View {
	q := strings.TrimSpace(text)
	cat := c.store.Catalog()
	if cat == nil {
		return c.unavailable(q)
	}
	observability.ObserveSearch(string(Classify(q)))

	key := fmt.Sprintf("search:%s:%s", c.store.Version(), q)
	if c.cache != nil {
		var cached domain.View
		ok, err := c.cache.Get(ctx, key, &cached)
		switch {
		case ok && err == nil:
			cached.Cards = c.renderer.Restamp(cached.Cards)
			return cached
		case ok:
			// entry exists but does not decode; drop it before re-rendering
			log.Warn().Err(err).Str("key", key).Msg("cached view unreadable")
			if err := c.cache.Del(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("cache del failed")
			}
		case err != nil:
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
	}

	v := c.renderer.Render(Match(cat, q), q)
	v.State = domain.StateReady
	if c.cache != nil {
		if err := c.cache.Set(ctx, key, v, int(c.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return v
}

// Destinations lists every destination of the loaded catalog.
func (c *Controller) Destinations() []domain.Destination {
	return FlattenAll(c.store.Catalog())
}

func (c *Controller) State() domain.CatalogState { return c.store.State() }

func (c *Controller) Version() string { return c.store.Version() }

// unavailable is the view while no catalog is loaded: no cards and no
// zero-result notice, so it is distinguishable from an empty search.
func (c *Controller) unavailable(q string) domain.View {
	return domain.View{
		Title: Title(q),
		Query: q,
		Cards: []domain.CardDescriptor{},
		State: c.store.State(),
	}
}

func (c *Controller) setCurrent(v domain.View) {
	c.mu.Lock()
	c.current = v
	c.mu.Unlock()
}
