package source

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"data-recon/core/dataset"
)

// entry is one cached dataset with its build time and lifetime.
type entry struct {
	ds    *dataset.Dataset
	built time.Time
	ttl   time.Duration
}

// expired reports whether the entry is past its TTL. A zero TTL is always
// expired, so specs without a TTL never serve from cache.
func (e *entry) expired() bool {
	if e.ttl == 0 {
		return true
	}
	return time.Since(e.built) > e.ttl
}

// cache stores loaded datasets keyed by spec fingerprint. Each Loader owns
// its own cache; singleflight collapses concurrent loads of the same spec.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	sf      singleflight.Group
}

func newCache() *cache {
	return &cache{entries: make(map[string]*entry)}
}

type loadFunc func(ctx context.Context, spec Spec) (*dataset.Dataset, error)

// getOrLoad returns the cached dataset for spec, loading and storing it if
// the cache has no live entry.
func (c *cache) getOrLoad(ctx context.Context, spec Spec, load loadFunc) (*dataset.Dataset, error) {
	key := spec.CacheKey()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !e.expired() {
		return e.ds, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Another load may have finished while we waited for the flight.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !e.expired() {
			return e.ds, nil
		}

		ds, err := load(ctx, spec)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &entry{ds: ds, built: time.Now(), ttl: spec.CacheTTL}
		c.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dataset.Dataset), nil
}

// invalidate drops the cached dataset for spec, if any.
func (c *cache) invalidate(spec Spec) {
	c.mu.Lock()
	delete(c.entries, spec.CacheKey())
	c.mu.Unlock()
}
