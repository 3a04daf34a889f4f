package cache

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/giftly/giftcart/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentFetches = 8

// ExperienceCache memoizes catalog records keyed by experience id. Entries
// are never evicted or refreshed within a session: the cache only grows.
// Eviction is a deliberate non-feature, sized for a single storefront
// session, not a shared server cache.
type ExperienceCache struct {
	catalog ports.Catalog
	log     logger.Logger

	mu      sync.RWMutex
	entries map[string]domain.Experience
}

func New(catalog ports.Catalog, log logger.Logger) *ExperienceCache {
	return &ExperienceCache{
		catalog: catalog,
		log:     log,
		entries: make(map[string]domain.Experience),
	}
}

func (c *ExperienceCache) Get(id string) (domain.Experience, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e, ok
}

// Price returns the cached price for an experience, if known.
func (c *ExperienceCache) Price(id string) (int64, bool) {
	e, ok := c.Get(id)
	return e.Price, ok
}

// Snapshot returns a copy of all cached entries.
func (c *ExperienceCache) Snapshot() map[string]domain.Experience {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]domain.Experience, len(c.entries))
	for id, e := range c.entries {
		out[id] = e
	}
	return out
}

// Ensure fetches every id not yet cached, in parallel, and merges the
// results without overwriting existing entries. It returns the ids that are
// still missing afterward (deleted products, lookup failures); those lines
// stay in the cart but cannot be priced. Ensure never fails the caller: a
// lookup failure degrades a line, it does not break the cart.
func (c *ExperienceCache) Ensure(ctx context.Context, ids []string) []string {
	missing := c.missing(ids)
	if len(missing) == 0 {
		return nil
	}

	fetched := make([]*domain.Experience, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for idx, id := range missing {
		idx, id := idx, id
		g.Go(func() error {
			exp, err := c.catalog.GetExperienceByID(gctx, id)
			if err != nil {
				if !errors.Is(err, domain.ErrExperienceNotFound) {
					c.log.Error("experience lookup failed",
						logger.String("experience_id", id),
						logger.String("error", err.Error()),
					)
				}
				return nil
			}
			fetched[idx] = exp
			return nil
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	for _, exp := range fetched {
		if exp == nil {
			continue
		}
		if _, ok := c.entries[exp.ID]; ok {
			continue
		}
		c.entries[exp.ID] = *exp
	}
	c.mu.Unlock()

	degraded := c.missing(ids)
	sort.Strings(degraded)
	return degraded
}

func (c *ExperienceCache) missing(ids []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := c.entries[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
