// Package research - cached.go wraps citation fetching with an in-memory TTL
// cache so repeated runs against the same prospect list do not re-fetch pages.
package research

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCacheTTL is how long a fetched citation page stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory TTL cache.
type CachedFetcher struct {
	cache     *gocache.Cache
	options   *FetchOptions
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *FetchOptions
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL:  DefaultCacheTTL,
		SkipCache: false,
		Options:   DefaultFetchOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultFetchOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &CachedFetcher{
		cache:     gocache.New(config.CacheTTL, config.CacheTTL),
		options:   config.Options,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends FetchResult with cache metadata.
type CachedResult struct {
	*FetchResult
	FromCache bool
}

// Fetch retrieves a URL, returning the cached result when fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if cached, found := f.cache.Get(urlStr); found {
			if result, ok := cached.(*FetchResult); ok {
				return &CachedResult{FetchResult: result, FromCache: true}, nil
			}
		}
	}

	result, err := FetchURL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	f.cache.SetDefault(urlStr, result)
	return &CachedResult{FetchResult: result, FromCache: false}, nil
}
