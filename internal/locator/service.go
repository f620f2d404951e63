package locator

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/location"
	"github.com/istanbulev/stationfinder/internal/models"
	"github.com/istanbulev/stationfinder/internal/station"
)

// LocationResolver resolves request input to a coordinate
type LocationResolver interface {
	Resolve(ctx context.Context, in location.Input) (models.ResolvedLocation, error)
}

// Service answers "nearest station to this input" requests
type Service struct {
	resolver LocationResolver
	stations models.StationLoader
}

func NewService(resolver LocationResolver, stations models.StationLoader) *Service {
	return &Service{
		resolver: resolver,
		stations: stations,
	}
}

// Resolve resolves the input and loads the station collection concurrently,
// then picks the nearest station.
//
// A MalformedInputError is returned alone, before any network call. When the
// station data cannot be loaded the resolution is still returned, carrying the
// location (and any warning) but no nearest station, together with a
// DataUnavailableError.
func (s *Service) Resolve(ctx context.Context, in location.Input) (*models.Resolution, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		loc      models.ResolvedLocation
		locErr   error
		stations models.StationCollection
		loadErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		loc, locErr = s.resolver.Resolve(ctx, in)
	}()
	go func() {
		defer wg.Done()
		stations, loadErr = s.stations.Load(ctx)
	}()
	wg.Wait()

	if locErr != nil {
		return nil, locErr
	}

	resolution := &models.Resolution{Location: loc}

	if loadErr != nil {
		var unavailable *models.DataUnavailableError
		if !errors.As(loadErr, &unavailable) {
			loadErr = models.NewDataUnavailableError("loading stations", loadErr)
		}
		log.Ctx(ctx).Error().Err(loadErr).Msg("Station data unavailable")
		return resolution, loadErr
	}

	resolution.Nearest = station.FindNearest(loc.Coordinate, stations)

	event := log.Ctx(ctx).Debug().
		Str("source", string(loc.Source)).
		Int("stations", len(stations))
	if resolution.Nearest != nil {
		event = event.
			Str("nearest", resolution.Nearest.Station.Name).
			Float64("distance_km", resolution.Nearest.DistanceKm)
	}
	event.Msg("Resolved nearest station")

	return resolution, nil
}
