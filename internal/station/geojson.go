package station

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/istanbulev/stationfinder/internal/models"
)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Geometry   geometry   `json:"geometry"`
	Properties properties `json:"properties"`
}

type geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// properties uses the IBB attribute names
type properties struct {
	Name    string `json:"AD"`
	Address string `json:"ADRES"`
}

func decodeFeatureCollection(data []byte) (models.StationCollection, error) {
	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decoding feature collection: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("unexpected document type %q", fc.Type)
	}
	if fc.Features == nil {
		return nil, errors.New("feature collection has no features array")
	}

	stations := make(models.StationCollection, 0, len(fc.Features))
	for i, f := range fc.Features {
		if len(f.Geometry.Coordinates) != 2 {
			return nil, fmt.Errorf("feature %d: expected [longitude, latitude], got %d values", i, len(f.Geometry.Coordinates))
		}

		// GeoJSON positions are longitude first
		coordinate := models.Coordinate{
			Latitude:  f.Geometry.Coordinates[1],
			Longitude: f.Geometry.Coordinates[0],
		}
		if err := coordinate.Validate(); err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		stations = append(stations, models.Station{
			Coordinates: coordinate,
			Name:        f.Properties.Name,
			Address:     f.Properties.Address,
		})
	}

	return stations, nil
}
