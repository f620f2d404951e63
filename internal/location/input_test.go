package location

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/istanbulev/stationfinder/internal/models"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		text   string
		want   models.Coordinate
		wantOK bool
	}{
		{text: "41.0082,28.9784", want: models.Coordinate{Latitude: 41.0082, Longitude: 28.9784}, wantOK: true},
		{text: " 41.0082 , 28.9784 ", want: models.Coordinate{Latitude: 41.0082, Longitude: 28.9784}, wantOK: true},
		{text: "-33.9,+151", want: models.Coordinate{Latitude: -33.9, Longitude: 151}, wantOK: true},
		{text: "41,29", want: models.Coordinate{Latitude: 41, Longitude: 29}, wantOK: true},
		{text: "95,200", want: models.Coordinate{Latitude: 95, Longitude: 200}, wantOK: true},
		{text: "Kadikoy", wantOK: false},
		{text: "41.0082;28.9784", wantOK: false},
		{text: "41.0082,28.9784,10", wantOK: false},
		{text: "NaN,28.9", wantOK: false},
		{text: "Inf,28.9", wantOK: false},
		{text: "41.,28.9", wantOK: false},
		{text: "Bagdat Caddesi 41, Kadikoy", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseLiteral(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantError bool
	}{
		{name: "address", input: TextInput("Kadikoy"), wantError: false},
		{name: "literal coordinate", input: TextInput("41.0082,28.9784"), wantError: false},
		{name: "empty text", input: TextInput(""), wantError: true},
		{name: "blank text", input: TextInput(" \t\n"), wantError: true},
		{name: "literal latitude out of range", input: TextInput("91,28.9"), wantError: true},
		{name: "literal longitude out of range", input: TextInput("41,-181"), wantError: true},
		{name: "explicit coordinate", input: CoordinateInput(models.Coordinate{Latitude: 41.0082, Longitude: 28.9784}), wantError: false},
		{name: "explicit coordinate out of range", input: CoordinateInput(models.Coordinate{Latitude: 41.0082, Longitude: 228.9784}), wantError: true},
		{name: "explicit coordinate infinite", input: CoordinateInput(models.Coordinate{Latitude: math.Inf(1), Longitude: 28.9784}), wantError: true},
		{name: "device reading", input: DeviceInput(models.Coordinate{Latitude: 41.03, Longitude: 28.98}), wantError: false},
		{name: "device reading out of range", input: DeviceInput(models.Coordinate{Latitude: -90.5, Longitude: 28.98}), wantError: true},
		{name: "device reading not finite", input: DeviceInput(models.Coordinate{Latitude: math.NaN(), Longitude: 28.98}), wantError: true},
		{name: "device denied", input: DeviceFailure(DeviceDenied), wantError: false},
		{name: "device timeout", input: DeviceFailure(DeviceTimeout), wantError: false},
		{name: "device unavailable", input: DeviceFailure(DeviceUnavailable), wantError: false},
		{name: "device unsupported", input: DeviceFailure(DeviceUnsupported), wantError: false},
		{name: "unknown device status", input: DeviceFailure("exploded"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var malformed *models.MalformedInputError
			assert.True(t, errors.As(err, &malformed), "expected MalformedInputError, got %T", err)
		})
	}
}
