package config

import (
	"github.com/istanbulev/stationfinder/internal/geo"
	"github.com/istanbulev/stationfinder/internal/models"
)

// City holds the fixed geography the resolver works against.
type City struct {
	Name string
	// RegionQualifier is appended to free-text queries to bias the geocoder.
	RegionQualifier string
	SouthWest       models.Coordinate
	NorthEast       models.Coordinate
	Center          models.Coordinate
}

// Istanbul returns the default service area.
func Istanbul() City {
	return City{
		Name:            "Istanbul",
		RegionQualifier: "Istanbul, Turkey",
		SouthWest:       models.Coordinate{Latitude: 40.8025, Longitude: 28.2567},
		NorthEast:       models.Coordinate{Latitude: 41.4205, Longitude: 29.6567},
		Center:          models.Coordinate{Latitude: 41.0082, Longitude: 28.9784},
	}
}

func (c City) Bounds() geo.BoundingBox {
	return geo.NewBoundingBox(c.SouthWest, c.NorthEast)
}
