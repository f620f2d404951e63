package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/istanbulev/stationfinder/internal/models"
	"github.com/istanbulev/stationfinder/pkg/http/client"
)

// nominatimResult mirrors the parts of the OSM search payload we read.
// Coordinates arrive as decimal strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NominatimGeocoder queries an OpenStreetMap Nominatim search endpoint
type NominatimGeocoder struct {
	httpClient client.Interface
	qualifier  string
}

var _ models.Geocoder = (*NominatimGeocoder)(nil)

// NewNominatimGeocoder appends qualifier (e.g. "Istanbul, Turkey") to every
// query to bias results towards the target city.
func NewNominatimGeocoder(httpClient client.Interface, qualifier string) *NominatimGeocoder {
	return &NominatimGeocoder{
		httpClient: httpClient,
		qualifier:  qualifier,
	}
}

// Geocode asks for at most one match. No match is an empty slice, not an error.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) ([]models.Coordinate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewMalformedInputError("empty geocoding query")
	}
	if g.qualifier != "" {
		query = query + ", " + g.qualifier
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")

	resp, err := g.httpClient.Get(ctx, "/search?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from geocoder")
	}
	if !resp.OK() {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.Unmarshal(resp.Body, &results); err != nil {
		return nil, fmt.Errorf("decoding geocoder response: %w", err)
	}

	coordinates := make([]models.Coordinate, 0, len(results))
	for _, r := range results {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing latitude %q: %w", r.Lat, err)
		}
		lon, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing longitude %q: %w", r.Lon, err)
		}
		coordinates = append(coordinates, models.Coordinate{Latitude: lat, Longitude: lon})
	}

	log.Ctx(ctx).Debug().
		Str("query", query).
		Int("results", len(coordinates)).
		Msg("Geocoded address")

	return coordinates, nil
}
