package feedCache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"travel_deal_sniper/internal/cache"
	"travel_deal_sniper/internal/fetcher"
	"travel_deal_sniper/internal/logger"
	"travel_deal_sniper/internal/models"
	"travel_deal_sniper/internal/parser"
)

// feedCache implements Service on top of a generic cache backend
type feedCache struct {
	cache   cache.Service
	fetcher fetcher.Service
	parser  parser.Service
	logger  logger.Service
	ttl     time.Duration

	// one lock per source so concurrent refreshes of the same stale
	// source collapse into a single fetch
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates a new per-source deal cache
func New(
	cacheService cache.Service,
	fetcherService fetcher.Service,
	parserService parser.Service,
	loggerService logger.Service,
	ttl time.Duration,
) Service {
	return &feedCache{
		cache:   cacheService,
		fetcher: fetcherService,
		parser:  parserService,
		logger:  loggerService,
		ttl:     ttl,
		locks:   make(map[string]*sync.Mutex),
	}
}

// GetOrRefresh returns the deal list for the source, refreshing it when the
// cached entry has expired. The stored entry always reflects exactly one
// completed fetch+parse cycle.
func (f *feedCache) GetOrRefresh(ctx context.Context, source models.Source) ([]models.TravelDeal, error) {
	key := cacheKey(source.ID)

	if deals, err := f.lookup(ctx, key); err == nil {
		f.logger.LogInfo(ctx, logger.OpCacheHit, fmt.Sprintf("Using cached %s data", source.ID), map[string]interface{}{
			"source": source.ID,
			"deals":  len(deals),
		})
		return deals, nil
	}

	lock := f.sourceLock(source.ID)
	lock.Lock()
	defer lock.Unlock()

	// Another request may have refreshed this source while we waited.
	if deals, err := f.lookup(ctx, key); err == nil {
		f.logger.LogInfo(ctx, logger.OpCacheHit, fmt.Sprintf("Using cached %s data", source.ID), map[string]interface{}{
			"source": source.ID,
			"deals":  len(deals),
		})
		return deals, nil
	}

	f.logger.LogInfo(ctx, logger.OpCacheMiss, fmt.Sprintf("Cache miss for source: %s", source.ID), map[string]interface{}{
		"source": source.ID,
	})

	entries, err := f.fetcher.Fetch(ctx, source.FeedURL)
	if err != nil {
		// Fail closed: the existing entry is left exactly as it was and the
		// caller degrades to no data for this call.
		return nil, models.NewSourceError(source.ID, "failed to fetch feed", err)
	}

	deals := make([]models.TravelDeal, 0, len(entries))
	for _, entry := range entries {
		deal, ok := f.parser.Parse(entry.Title, entry.Link)
		if !ok {
			f.logger.LogDebug(ctx, logger.OpTitleParse, fmt.Sprintf("Skipped unparseable title: %s", entry.Title), map[string]interface{}{
				"source": source.ID,
			})
			continue
		}
		deals = append(deals, *deal)
	}

	if err := f.cache.Set(ctx, key, deals, f.ttl); err != nil {
		f.logger.LogError(ctx, logger.OpCacheSet, source.ID, "Failed to cache deals", err, models.LogSeverityLow, map[string]interface{}{
			"deals": len(deals),
		})
		// A cache-write failure must not fail the call.
	}

	f.logger.LogSuccess(ctx, logger.OpFeedRefresh, source.ID, fmt.Sprintf("Fetched %d deals from %s", len(deals), source.ID), map[string]interface{}{
		"entries": len(entries),
		"deals":   len(deals),
	})

	return deals, nil
}

// lookup reads a deal list from the backend, handling the value shapes the
// memory and Redis backends produce.
func (f *feedCache) lookup(ctx context.Context, key string) ([]models.TravelDeal, error) {
	value, err := f.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, models.ErrCacheMiss) {
			f.logger.LogError(ctx, logger.OpCacheGet, key, "Cache lookup failed", err, models.LogSeverityLow, nil)
		}
		return nil, err
	}

	switch v := value.(type) {
	case []models.TravelDeal:
		// Memory cache returns the stored slice
		return v, nil
	case string:
		// Redis cache returns a JSON string
		var deals []models.TravelDeal
		if err := json.Unmarshal([]byte(v), &deals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cached deals: %w", err)
		}
		return deals, nil
	default:
		return nil, fmt.Errorf("unexpected type in cache: %T", v)
	}
}

// sourceLock returns the refresh lock for a source, creating it on first use
func (f *feedCache) sourceLock(sourceID string) *sync.Mutex {
	f.locksMu.Lock()
	defer f.locksMu.Unlock()

	lock, ok := f.locks[sourceID]
	if !ok {
		lock = &sync.Mutex{}
		f.locks[sourceID] = lock
	}
	return lock
}

func cacheKey(sourceID string) string {
	return fmt.Sprintf("feed:%s", sourceID)
}
