package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache loads missing values with fn and stores them for ttl.
type ReadThroughCache[K ~string, V any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, key K) (V, error)
	ttl             time.Duration
	shouldSkipCache bool
}

func NewReadThroughCache[K ~string, V any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, key K) (V, error),
	ttl time.Duration,
	shouldSkipCache bool,
) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache:           cache,
		fn:              fn,
		ttl:             ttl,
		shouldSkipCache: shouldSkipCache,
	}
}

func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, key)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.fn(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.ttl)

	return value, nil
}

func (r *ReadThroughCache[K, V]) GetWithRefresh(ctx context.Context, key K) (V, error) {
	if r.shouldSkipCache {
		return r.fn(ctx, key)
	}

	if value, ok := r.cache.GetWithRefresh(ctx, key, r.ttl); ok {
		return value, nil
	}

	value, err := r.fn(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.ttl)

	return value, nil
}
