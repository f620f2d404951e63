package models

import "context"

// StationLoader provides the current station collection
type StationLoader interface {
	Load(ctx context.Context) (StationCollection, error)
}

// Geocoder turns free text into candidate coordinates, best match first.
// An empty slice with a nil error means the lookup found nothing.
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]Coordinate, error)
}
