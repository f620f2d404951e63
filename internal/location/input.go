package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/istanbulev/stationfinder/internal/models"
)

// DeviceStatus is the outcome reported by the client's geolocation API
type DeviceStatus string

const (
	DeviceOK          DeviceStatus = "ok"
	DeviceDenied      DeviceStatus = "denied"
	DeviceTimeout     DeviceStatus = "timeout"
	DeviceUnavailable DeviceStatus = "unavailable"
	DeviceUnsupported DeviceStatus = "unsupported"
)

// literalPattern matches "lat,lng" with optional whitespace around the comma.
var literalPattern = regexp.MustCompile(`^\s*([-+]?\d+(?:\.\d+)?)\s*,\s*([-+]?\d+(?:\.\d+)?)\s*$`)

// DeviceReading is what the client's geolocation API produced
type DeviceReading struct {
	Status     DeviceStatus
	Coordinate models.Coordinate
}

// Input is one resolution request: free text (a literal "lat,lng" or an
// address), an explicit coordinate, or a device geolocation outcome.
// Exactly one of the fields is set.
type Input struct {
	Text       string
	Coordinate *models.Coordinate
	Device     *DeviceReading
}

func TextInput(text string) Input {
	return Input{Text: text}
}

func CoordinateInput(c models.Coordinate) Input {
	return Input{Coordinate: &c}
}

func DeviceInput(c models.Coordinate) Input {
	return Input{Device: &DeviceReading{Status: DeviceOK, Coordinate: c}}
}

func DeviceFailure(status DeviceStatus) Input {
	return Input{Device: &DeviceReading{Status: status}}
}

// Validate rejects input that cannot be resolved at all. It runs before any
// network call.
func (in Input) Validate() error {
	if in.Coordinate != nil {
		return in.Coordinate.Validate()
	}

	if in.Device != nil {
		switch in.Device.Status {
		case DeviceOK:
			return in.Device.Coordinate.Validate()
		case DeviceDenied, DeviceTimeout, DeviceUnavailable, DeviceUnsupported:
			return nil
		default:
			return models.NewMalformedInputError(fmt.Sprintf("unknown geolocation status: %q", in.Device.Status))
		}
	}

	if strings.TrimSpace(in.Text) == "" {
		return models.NewMalformedInputError("address must not be empty")
	}

	if c, ok := parseLiteral(in.Text); ok {
		return c.Validate()
	}
	return nil
}

// parseLiteral recognizes "lat,lng" text. The range is not checked here.
func parseLiteral(text string) (models.Coordinate, bool) {
	m := literalPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Coordinate{}, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	return models.Coordinate{Latitude: lat, Longitude: lng}, true
}
