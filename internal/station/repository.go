package station

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/cache"
	"github.com/istanbulev/stationfinder/internal/models"
	"github.com/istanbulev/stationfinder/pkg/http/client"
)

// CacheKey is the single cache entry holding the raw dataset
const CacheKey = "stations"

type Repository struct {
	httpClient client.Interface
	cache      *cache.StationCache
	datasetURL string
}

var _ models.StationLoader = (*Repository)(nil)

func NewRepository(httpClient client.Interface, stationCache *cache.StationCache, datasetURL string) *Repository {
	if stationCache == nil {
		store, _ := cache.NewMemoryStore(0)
		stationCache = cache.NewStationCache(store, nil) // Use default config
	}

	return &Repository{
		httpClient: httpClient,
		cache:      stationCache,
		datasetURL: datasetURL,
	}
}

// Load returns the station collection, from the cache when it holds a fresh
// copy of the dataset and from the provider otherwise.
func (r *Repository) Load(ctx context.Context) (models.StationCollection, error) {
	if raw, ok := cache.Read[json.RawMessage](ctx, r.cache, CacheKey); ok {
		stations, err := decodeFeatureCollection(raw)
		if err == nil {
			log.Ctx(ctx).Debug().Int("count", len(stations)).Msg("Station list served from cache")
			return stations, nil
		}
		log.Ctx(ctx).Warn().Err(err).Msg("Cached dataset no longer decodes, refetching")
		r.cache.Delete(ctx, CacheKey)
	}

	return r.fetch(ctx)
}

// Refresh skips the cache, refetches the dataset and replaces the cache entry.
// On failure the previous entry is left untouched.
func (r *Repository) Refresh(ctx context.Context) (models.StationCollection, error) {
	log.Ctx(ctx).Info().Msg("Forcing station list refresh")
	return r.fetch(ctx)
}

func (r *Repository) fetch(ctx context.Context) (models.StationCollection, error) {
	resp, err := r.httpClient.Get(ctx, r.datasetURL)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Error fetching station dataset")
		return nil, models.NewDataUnavailableError("fetching stations", err)
	}
	if resp == nil {
		return nil, models.NewDataUnavailableError("no response from dataset provider", nil)
	}
	if !resp.OK() {
		log.Ctx(ctx).Error().Int("status", resp.StatusCode).Msg("Dataset provider returned an error status")
		return nil, models.NewDataUnavailableError(fmt.Sprintf("dataset provider returned status %d", resp.StatusCode), nil)
	}

	stations, err := decodeFeatureCollection(resp.Body)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Error decoding station dataset")
		return nil, models.NewDataUnavailableError("decoding stations", err)
	}

	cache.Write(ctx, r.cache, CacheKey, json.RawMessage(resp.Body))

	log.Ctx(ctx).Info().Int("count", len(stations)).Msg("Fetched station list from provider")
	return stations, nil
}
