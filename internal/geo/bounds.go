package geo

import (
	"github.com/golang/geo/s2"

	"github.com/istanbulev/stationfinder/internal/models"
)

// BoundingBox is a lat/lng rectangle used as the city geofence.
type BoundingBox struct {
	rect s2.Rect
}

// NewBoundingBox builds a box from its south-west and north-east corners.
func NewBoundingBox(southWest, northEast models.Coordinate) BoundingBox {
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(southWest.Latitude, southWest.Longitude))
	rect = rect.AddPoint(s2.LatLngFromDegrees(northEast.Latitude, northEast.Longitude))
	return BoundingBox{rect: rect}
}

// Contains reports whether c lies inside the box, edges included.
func (b BoundingBox) Contains(c models.Coordinate) bool {
	return b.rect.ContainsLatLng(s2.LatLngFromDegrees(c.Latitude, c.Longitude))
}
