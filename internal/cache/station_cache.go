package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/config"
	"github.com/istanbulev/stationfinder/internal/metrics"
)

// cacheRecord is the persisted envelope. Timestamp is epoch milliseconds.
type cacheRecord struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// StationCache is a TTL-bounded cache over a Store. It never returns errors:
// every store or decoding failure degrades to a miss.
type StationCache struct {
	store Store
	ttl   time.Duration
	clock clock
}

func NewStationCache(store Store, cfg *config.CacheConfig) *StationCache {
	if cfg == nil {
		cfg = config.DefaultCacheConfig()
	}
	return &StationCache{
		store: store,
		ttl:   cfg.GetStationTTL(),
		clock: systemClock{},
	}
}

// Read returns the payload under key when present and younger than the TTL.
// Stale and corrupted entries are evicted so the next read is a clean miss.
func Read[T any](ctx context.Context, c *StationCache, key string) (T, bool) {
	var zero T

	raw, ok := c.readRaw(ctx, key)
	if !ok {
		return zero, false
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cached payload is corrupted, evicting")
		metrics.CacheLookupsTotal.WithLabelValues("corrupt").Inc()
		c.Delete(ctx, key)
		return zero, false
	}

	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return data, true
}

// Write stores data under key with the current time, replacing any prior entry.
// Failures are logged and dropped.
func Write[T any](ctx context.Context, c *StationCache, key string, data T) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Error encoding cache payload")
		metrics.CacheWriteFailuresTotal.Inc()
		return
	}

	record, err := json.Marshal(cacheRecord{
		Data:      payload,
		Timestamp: c.clock.Now().UnixMilli(),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Error encoding cache record")
		metrics.CacheWriteFailuresTotal.Inc()
		return
	}

	if err := c.store.Put(ctx, key, record); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Error writing to cache")
		metrics.CacheWriteFailuresTotal.Inc()
		return
	}

	log.Debug().Str("key", key).Int("bytes", len(record)).Msg("Cache entry written")
}

// Delete evicts key. Failures are logged and dropped.
func (c *StationCache) Delete(ctx context.Context, key string) {
	if err := c.store.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Error evicting cache entry")
	}
}

func (c *StationCache) readRaw(ctx context.Context, key string) (json.RawMessage, bool) {
	value, err := c.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		log.Debug().Str("key", key).Msg("Cache MISS")
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Error reading from cache")
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return nil, false
	}

	var record cacheRecord
	if err := json.Unmarshal(value, &record); err != nil || record.Data == nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache entry is corrupted, evicting")
		metrics.CacheLookupsTotal.WithLabelValues("corrupt").Inc()
		c.Delete(ctx, key)
		return nil, false
	}

	age := c.clock.Now().UnixMilli() - record.Timestamp
	if age >= c.ttl.Milliseconds() {
		log.Debug().Str("key", key).Int64("age_ms", age).Msg("Cache entry expired, evicting")
		metrics.CacheLookupsTotal.WithLabelValues("expired").Inc()
		c.Delete(ctx, key)
		return nil, false
	}

	log.Debug().Str("key", key).Msg("Cache HIT")
	return record.Data, true
}
