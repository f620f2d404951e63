package location

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/config"
	"github.com/istanbulev/stationfinder/internal/geo"
	"github.com/istanbulev/stationfinder/internal/metrics"
	"github.com/istanbulev/stationfinder/internal/models"
)

// Warnings attached to fallback-center resolutions
const (
	WarningNotFound           = "location not found, showing city center"
	WarningLookupFailed       = "lookup failed, showing city center"
	WarningOutOfBounds        = "location is outside the service area, showing city center"
	WarningPermissionDenied   = "location permission denied, showing city center"
	WarningGeolocationTimeout = "location request timed out, showing city center"
	WarningUnavailable        = "location unavailable, showing city center"
	WarningUnsupported        = "geolocation not supported, showing city center"
)

var deviceWarnings = map[DeviceStatus]string{
	DeviceDenied:      WarningPermissionDenied,
	DeviceTimeout:     WarningGeolocationTimeout,
	DeviceUnavailable: WarningUnavailable,
	DeviceUnsupported: WarningUnsupported,
}

type Resolver struct {
	geocoder models.Geocoder
	city     config.City
	bounds   geo.BoundingBox
}

func NewResolver(geocoder models.Geocoder, city config.City) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		city:     city,
		bounds:   city.Bounds(),
	}
}

// Resolve turns input into a coordinate inside the city. Only malformed input
// is an error; lookup misses, geolocation failures and out of area results
// resolve to the city center with a warning.
func (r *Resolver) Resolve(ctx context.Context, in Input) (models.ResolvedLocation, error) {
	if err := in.Validate(); err != nil {
		return models.ResolvedLocation{}, err
	}

	loc := r.resolve(ctx, in)
	metrics.ResolutionsTotal.WithLabelValues(string(loc.Source)).Inc()

	event := log.Ctx(ctx).Debug()
	if loc.Fallback() {
		event = log.Ctx(ctx).Info()
	}
	event.
		Str("source", string(loc.Source)).
		Str("coordinate", loc.Coordinate.String()).
		Str("warning", loc.Warning).
		Msg("Resolved location")

	return loc, nil
}

func (r *Resolver) resolve(ctx context.Context, in Input) models.ResolvedLocation {
	if in.Coordinate != nil {
		return r.checkBounds(*in.Coordinate, models.SourceExplicitCoordinates)
	}

	if in.Device != nil {
		if in.Device.Status != DeviceOK {
			return r.fallback(deviceWarnings[in.Device.Status])
		}
		return r.checkBounds(in.Device.Coordinate, models.SourceDeviceGeolocation)
	}

	if c, ok := parseLiteral(in.Text); ok {
		return r.checkBounds(c, models.SourceExplicitCoordinates)
	}

	results, err := r.geocoder.Geocode(ctx, in.Text)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("query", in.Text).Msg("Geocoding failed")
		return r.fallback(WarningLookupFailed)
	}
	if len(results) == 0 {
		return r.fallback(WarningNotFound)
	}
	if err := results[0].Validate(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("query", in.Text).Msg("Geocoder returned an invalid coordinate")
		return r.fallback(WarningLookupFailed)
	}
	return r.checkBounds(results[0], models.SourceGeocodedAddress)
}

func (r *Resolver) checkBounds(c models.Coordinate, source models.LocationSource) models.ResolvedLocation {
	if !r.bounds.Contains(c) {
		return r.fallback(WarningOutOfBounds)
	}
	return models.ResolvedLocation{
		Coordinate: c,
		Source:     source,
	}
}

func (r *Resolver) fallback(warning string) models.ResolvedLocation {
	return models.ResolvedLocation{
		Coordinate: r.city.Center,
		Source:     models.SourceFallbackCenter,
		Warning:    warning,
	}
}
