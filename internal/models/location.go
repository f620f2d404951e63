package models

type LocationSource string

const (
	SourceExplicitCoordinates LocationSource = "explicit-coordinates"
	SourceGeocodedAddress     LocationSource = "geocoded-address"
	SourceDeviceGeolocation   LocationSource = "device-geolocation"
	SourceFallbackCenter      LocationSource = "fallback-center"
)

// ResolvedLocation is the outcome of resolving user input to a point.
// Warning is only set for fallback outcomes.
type ResolvedLocation struct {
	Coordinate Coordinate     `json:"coordinate"`
	Source     LocationSource `json:"source"`
	Warning    string         `json:"warning,omitempty"`
}

// Fallback reports whether the location degraded to the city center.
func (l ResolvedLocation) Fallback() bool {
	return l.Source == SourceFallbackCenter
}

// Resolution is the combined result handed to the presentation layer.
// Nearest is nil when the station collection is empty or could not be loaded.
type Resolution struct {
	Location ResolvedLocation `json:"location"`
	Nearest  *NearestResult   `json:"nearest"`
}
