package models

import (
	"fmt"
	"math"
)

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate rejects non-finite values and values outside the WGS84 range.
// Out of range input is an error, never clamped.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return NewMalformedInputError(fmt.Sprintf("coordinate is not finite: %v,%v", c.Latitude, c.Longitude))
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return NewMalformedInputError(fmt.Sprintf("invalid latitude: %f", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return NewMalformedInputError(fmt.Sprintf("invalid longitude: %f", c.Longitude))
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// Station is a single charging point from the city dataset.
type Station struct {
	Coordinates Coordinate `json:"coordinates"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
}

// StationCollection keeps the order of the source dataset.
type StationCollection []Station

// NearestResult is the closest station to a point. A nil *NearestResult
// means there were no stations to search.
type NearestResult struct {
	Station    Station `json:"station"`
	DistanceKm float64 `json:"distanceKm"`
}
