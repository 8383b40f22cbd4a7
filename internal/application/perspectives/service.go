package perspectives

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kiewb/perspectives/internal/cachemanager"
	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/domain/perspective"
	"github.com/kiewb/perspectives/internal/log"
)

// Cache is the cache shape used to memoize per-distribution results.
type Cache = cachemanager.CacheManager[distribution.Distribution, []perspective.Perspective]

// Query selects perspectives. An empty Menu matches every menu.
type Query struct {
	Distribution distribution.Distribution
	Menu         string
}

// MatrixRow holds the perspectives enumerated for one distribution.
type MatrixRow struct {
	Distribution distribution.Distribution
	Perspectives []perspective.Perspective
}

// Service answers perspective queries for the CLI.
type Service struct {
	provider       perspective.Provider
	byDistribution *cachemanager.ReadThroughCache[distribution.Distribution, []perspective.Perspective]
	sliding        bool
}

type options struct {
	cache     Cache
	ttl       time.Duration
	skipCache bool
}

// Option configures a Service.
type Option func(*options)

// WithCache replaces the default in-memory cache.
func WithCache(c Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithTTL sets how long per-distribution results stay cached after their last read.
// Zero or less keeps them for the lifetime of the cache.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}

// WithoutCache queries the provider on every call.
func WithoutCache() Option {
	return func(o *options) {
		o.skipCache = true
	}
}

// NewService creates a service over provider.
func NewService(provider perspective.Provider, opts ...Option) *Service {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	sliding := o.ttl > 0
	if !sliding {
		o.ttl = cachemanager.NoExpiration
	}
	if o.cache == nil {
		o.cache = cachemanager.NewInMemoryCacheManager[distribution.Distribution, []perspective.Perspective](
			"perspectives-by-distribution", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval)
	}

	s := &Service{provider: provider, sliding: sliding}
	s.byDistribution = cachemanager.NewReadThroughCache(o.cache, s.load, o.ttl, o.skipCache)
	return s
}

// NewCatalogService creates a service over the process-wide catalog.
func NewCatalogService(opts ...Option) *Service {
	return NewService(perspective.Catalog(), opts...)
}

func (s *Service) load(ctx context.Context, d distribution.Distribution) ([]perspective.Perspective, error) {
	ps := s.provider.ForDistribution(d)
	log.Debug(log.CatRegistry, "filtered perspectives", "distribution", d, "count", len(ps))
	return ps, nil
}

// ForDistribution returns the perspectives present in d, in catalog order.
func (s *Service) ForDistribution(ctx context.Context, d distribution.Distribution) ([]perspective.Perspective, error) {
	var (
		ps  []perspective.Perspective
		err error
	)
	if s.sliding {
		ps, err = s.byDistribution.GetWithRefresh(ctx, d)
	} else {
		ps, err = s.byDistribution.Get(ctx, d)
	}
	if err != nil {
		return nil, fmt.Errorf("listing perspectives for %s: %w", d, err)
	}
	out := make([]perspective.Perspective, len(ps))
	copy(out, ps)
	return out, nil
}

// Find returns the perspectives matching q, in catalog order.
func (s *Service) Find(ctx context.Context, q Query) ([]perspective.Perspective, error) {
	ps, err := s.ForDistribution(ctx, q.Distribution)
	if err != nil {
		return nil, err
	}
	if q.Menu == "" {
		return ps, nil
	}

	result := make([]perspective.Perspective, 0, len(ps))
	for _, p := range ps {
		if p.Menu() == q.Menu {
			result = append(result, p)
		}
	}
	log.Debug(log.CatRegistry, "filtered by menu", "menu", q.Menu, "count", len(result))
	return result, nil
}

// Matrix returns, for every known distribution, the perspectives a test run enumerates.
func (s *Service) Matrix(ctx context.Context) ([]MatrixRow, error) {
	dists := distribution.All()
	rows := make([]MatrixRow, 0, len(dists))
	for _, d := range dists {
		ps, err := s.ForDistribution(ctx, d)
		if err != nil {
			return nil, err
		}
		rows = append(rows, MatrixRow{Distribution: d, Perspectives: ps})
	}
	return rows, nil
}

// Lookup resolves a perspective by test case ID, falling back to display name.
func (s *Service) Lookup(idOrName string) (perspective.Perspective, error) {
	p, err := s.provider.GetByID(idOrName)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, perspective.ErrNotFound) {
		return perspective.Perspective{}, err
	}

	p, err = s.provider.GetByName(idOrName)
	if err != nil {
		return perspective.Perspective{}, fmt.Errorf("%w: %q", err, idOrName)
	}
	return p, nil
}

// Menus returns the distinct menus in catalog order.
func (s *Service) Menus() []string {
	return s.provider.Menus()
}
