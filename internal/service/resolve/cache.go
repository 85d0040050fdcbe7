package resolve

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes resolved objects for a fixed TTL. One Cache is shared by
// every resolver it wraps; entries are keyed by type and id.
type Cache struct {
	store *gocache.Cache
}

// NewCache returns nil when ttl is not positive, which disables caching.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return nil
	}
	return &Cache{store: gocache.New(ttl, ttl*2)}
}

// Wrap returns a Resolver that consults the cache before res. Failed
// lookups are not cached.
func (c *Cache) Wrap(typ string, res Resolver) Resolver {
	return &cached{typ: typ, next: res, cache: c}
}

type cached struct {
	typ   string
	next  Resolver
	cache *Cache
}

func (r *cached) Resolve(ctx context.Context, id string) (Object, error) {
	key := r.typ + ":" + id
	if v, found := r.cache.store.Get(key); found {
		return v.(Object), nil
	}
	obj, err := r.next.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.store.Set(key, obj, gocache.DefaultExpiration)
	return obj, nil
}
