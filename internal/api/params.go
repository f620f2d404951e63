package api

import (
	"strconv"
	"strings"

	"github.com/istanbulev/stationfinder/internal/location"
	"github.com/istanbulev/stationfinder/internal/models"
)

// ParseInput maps query parameters to a resolution request:
//
//	q=<address or "lat,lng">
//	lat=<lat>&lng=<lng>                    explicit coordinates
//	source=geolocation&lat=<lat>&lng=<lng> device position
//	geoError=denied|timeout|unavailable|unsupported
//
// Range checks happen later in location.Input.Validate.
func ParseInput(params map[string]string) (location.Input, error) {
	if status, ok := params["geoError"]; ok {
		return location.DeviceFailure(location.DeviceStatus(strings.ToLower(status))), nil
	}

	latStr, hasLat := params["lat"]
	lngStr, hasLng := params["lng"]
	if !hasLng {
		lngStr, hasLng = params["lon"]
	}

	if hasLat || hasLng {
		if !hasLat || !hasLng {
			return location.Input{}, models.NewMalformedInputError("lat and lng must be given together")
		}

		c, err := parseCoordinate(latStr, lngStr)
		if err != nil {
			return location.Input{}, err
		}

		if params["source"] == "geolocation" {
			return location.DeviceInput(c), nil
		}
		return location.CoordinateInput(c), nil
	}

	if q, ok := params["q"]; ok {
		return location.TextInput(q), nil
	}

	return location.Input{}, models.NewMalformedInputError("missing location: provide q, lat and lng, or geoError")
}

func parseCoordinate(latStr, lngStr string) (models.Coordinate, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return models.Coordinate{}, models.NewMalformedInputError("invalid latitude: " + latStr)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return models.Coordinate{}, models.NewMalformedInputError("invalid longitude: " + lngStr)
	}
	return models.Coordinate{Latitude: lat, Longitude: lng}, nil
}
