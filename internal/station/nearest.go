package station

import (
	"github.com/istanbulev/stationfinder/internal/geo"
	"github.com/istanbulev/stationfinder/internal/models"
)

// FindNearest scans every station and returns the closest one to point.
// Ties go to the earliest station in collection order. Returns nil for an
// empty collection.
func FindNearest(point models.Coordinate, stations models.StationCollection) *models.NearestResult {
	var nearest *models.NearestResult

	for _, s := range stations {
		distance := geo.HaversineKm(point, s.Coordinates)
		if nearest == nil || distance < nearest.DistanceKm {
			nearest = &models.NearestResult{
				Station:    s,
				DistanceKm: distance,
			}
		}
	}

	return nearest
}
