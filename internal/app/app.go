package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/cache"
	"github.com/istanbulev/stationfinder/internal/config"
	"github.com/istanbulev/stationfinder/internal/geocode"
	"github.com/istanbulev/stationfinder/internal/handler"
	"github.com/istanbulev/stationfinder/internal/location"
	"github.com/istanbulev/stationfinder/internal/locator"
	"github.com/istanbulev/stationfinder/internal/report"
	"github.com/istanbulev/stationfinder/internal/station"
	"github.com/istanbulev/stationfinder/pkg/http/client"
)

// App holds the wired services shared by the Lambda functions and the server
type App struct {
	Config     *config.Config
	Store      cache.Store
	Repository *station.Repository
	Locator    *locator.Service
	Handlers   handler.Handlers
}

func New(ctx context.Context, cfg *config.Config, cacheCfg *config.CacheConfig) (*App, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if cacheCfg == nil {
		cacheCfg = config.DefaultCacheConfig()
	}

	store, err := cache.NewStore(ctx, cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("initializing cache store: %w", err)
	}
	stationCache := cache.NewStationCache(store, cacheCfg)

	stationsClient := client.New(client.Options{
		Timeout:   cfg.HTTPTimeout,
		Upstream:  "stations",
		UserAgent: cfg.GeocoderUserAgent,
	})
	repository := station.NewRepository(stationsClient, stationCache, cfg.StationsURL)

	geocoderClient := client.New(client.Options{
		BaseURL:   cfg.GeocoderURL,
		Timeout:   cfg.HTTPTimeout,
		Upstream:  "geocoder",
		UserAgent: cfg.GeocoderUserAgent,
	})
	geocoder := geocode.NewNominatimGeocoder(geocoderClient, cfg.City.RegionQualifier)

	resolver := location.NewResolver(geocoder, cfg.City)
	service := locator.NewService(resolver, repository)

	log.Debug().
		Str("city", cfg.City.Name).
		Str("cache_backend", cacheCfg.Backend).
		Msg("Application wired")

	return &App{
		Config:     cfg,
		Store:      store,
		Repository: repository,
		Locator:    service,
		Handlers: handler.Handlers{
			Stations: handler.NewStationsHandler(repository),
			Nearest:  handler.NewNearestHandler(service),
			Refresh:  handler.NewRefreshHandler(repository),
			Health:   handler.NewHealthHandler(repository),
		},
	}, nil
}

// Router serves every endpoint over HTTP
func (a *App) Router() http.Handler {
	return handler.NewRouter(a.Handlers, a.Config.AllowedOrigins)
}

// Close releases the cache store when it holds resources (SQLite)
func (a *App) Close() error {
	if closer, ok := a.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// FromEnv loads configuration from the environment, sets up logging and
// error reporting, then wires the application
func FromEnv(ctx context.Context) (*App, error) {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if err := report.Setup(cfg.SentryDSN, cfg.Environment); err != nil {
		log.Warn().Err(err).Msg("Error reporting disabled")
	}

	return New(ctx, cfg, config.GetCacheConfig())
}
