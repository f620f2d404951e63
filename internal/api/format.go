package api

import (
	"fmt"
	"math"
	"net/url"

	"github.com/istanbulev/stationfinder/internal/models"
)

// FormatDistance renders whole metres below one kilometre, otherwise
// kilometres with one decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}

// DirectionsURL links to Google Maps driving directions ending at c
func DirectionsURL(c models.Coordinate) string {
	params := url.Values{}
	params.Set("api", "1")
	params.Set("destination", fmt.Sprintf("%v,%v", c.Latitude, c.Longitude))
	params.Set("travelmode", "driving")
	return "https://www.google.com/maps/dir/?" + params.Encode()
}
