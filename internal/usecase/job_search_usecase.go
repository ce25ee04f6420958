package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"resume-match/internal/domain/job"
	"resume-match/internal/search"
)

const (
	providerCallTimeout = 15 * time.Second
	maxSearchResults    = 10
	searchCacheTTL      = 10 * time.Minute
)

// JobSearchUsecase fans a query out to the configured providers and
// assembles one bounded, deduplicated listing batch. Provider failures are
// logged and swallowed; an empty overall result engages the demo fallback,
// so callers always receive at least one listing.
type JobSearchUsecase struct {
	providers []search.Provider
	cache     SearchCache
	logger    *log.Logger
}

func NewJobSearchUsecase(providers []search.Provider, cache SearchCache, logger *log.Logger) *JobSearchUsecase {
	if logger == nil {
		logger = log.Default()
	}
	return &JobSearchUsecase{providers: providers, cache: cache, logger: logger}
}

func (uc *JobSearchUsecase) Search(ctx context.Context, role, location, company string) []job.Listing {
	q := search.Query{Role: role, Location: location, Company: company}

	key := JobsSearchCacheKey(q)
	if uc.cache != nil {
		var cached []job.Listing
		if ok, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && ok && len(cached) > 0 {
			return cached
		}
	}

	merged := uc.queryProviders(ctx, q)
	if len(merged) == 0 {
		uc.logger.Printf("[Search] no provider results for role=%q, serving demo data", role)
		return search.DemoListings(q)
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, merged, searchCacheTTL); err != nil {
			uc.logger.Printf("[Search] cache write failed: %v", err)
		}
	}
	return merged
}

// queryProviders runs every provider under the bounded worker pool and
// merges results in provider priority order with batch-unique IDs.
func (uc *JobSearchUsecase) queryProviders(ctx context.Context, q search.Query) []job.Listing {
	if len(uc.providers) == 0 {
		return nil
	}

	byProvider := make([][]job.Listing, len(uc.providers))

	pool := search.NewWorkerPool(len(uc.providers), len(uc.providers))
	results := pool.Run(ctx)

	for i, p := range uc.providers {
		i, p := i, p
		pool.Submit(func(ctx context.Context) error {
			callCtx, cancel := context.WithTimeout(ctx, providerCallTimeout)
			defer cancel()
			items, err := p.Search(callCtx, q)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name(), err)
			}
			byProvider[i] = items
			return nil
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil {
			uc.logger.Printf("[Search] provider failed: %v", res.Err)
		}
	}

	merged := make([]job.Listing, 0, maxSearchResults)
	seen := map[string]struct{}{}
	for _, items := range byProvider {
		for _, l := range items {
			if len(merged) >= maxSearchResults {
				return merged
			}
			if l.ID == "" {
				l.ID = l.Link
			}
			if l.ID == "" || l.Title == "" || l.Link == "" {
				continue
			}
			if _, dup := seen[l.ID]; dup {
				continue
			}
			seen[l.ID] = struct{}{}
			merged = append(merged, l)
		}
	}
	return merged
}
