package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/confmerge/internal/logger"
	"github.com/MKhiriev/confmerge/models"
)

// cacheKey identifies one lookup. The empty path and the nil shape are
// ordinary key values.
type cacheKey struct {
	path  string
	shape *models.Shape
}

// CachedStore memoises the lookups of a wrapped [Getter].
//
// Every distinct (path, shape) pair reaches the wrapped Getter at most once
// per CachedStore; its result, nil included, is kept for the lifetime of
// the store and returned by identity afterwards. Errors are not cached, so
// a failed lookup is retried on the next call. Paths are cached exactly as
// given: "FOO" and "foo" are two entries even if they resolve alike.
type CachedStore struct {
	inner Getter
	log   *logger.Logger

	mu    sync.Mutex
	cache map[cacheKey]any
}

// NewCached wraps inner. A nil l discards debug output.
func NewCached(inner Getter, l *logger.Logger) *CachedStore {
	if l == nil {
		l = logger.Nop()
	}
	return &CachedStore{
		inner: inner,
		log:   l.GetChildLogger("cache"),
		cache: make(map[cacheKey]any),
	}
}

// NewCachedStore builds a [Store] from data and opts and wraps it.
func NewCachedStore(data models.Mapping, opts ...Option) *CachedStore {
	o := newOptions(opts)
	return NewCached(New(data, WithOptions(o)), o.Logger)
}

// Get returns the cached value for (path, target), delegating to the
// wrapped Getter on the first call only. The lock is held while
// delegating so concurrent first calls cannot produce divergent instances.
func (c *CachedStore) Get(ctx context.Context, path string, target *models.Shape) (any, error) {
	key := cacheKey{path: path, shape: target}

	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.cache[key]; ok {
		return value, nil
	}

	value, err := c.inner.Get(ctx, path, target)
	if err != nil {
		return nil, err
	}

	c.cache[key] = value
	c.log.Debug().
		Str("path", path).
		Str("shape", shapeName(target)).
		Msg("cached config lookup")

	return value, nil
}

// Len returns the number of cached lookups.
func (c *CachedStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

func shapeName(s *models.Shape) string {
	if s == nil {
		return ""
	}
	return s.Name
}
