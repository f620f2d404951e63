package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/istanbulev/stationfinder/internal/models"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type StationsResponse struct {
	APIResponse
	Count    int              `json:"count"`
	Stations []models.Station `json:"stations"`
}

// NearestStation is a station decorated for display
type NearestStation struct {
	models.Station
	DistanceKm    float64 `json:"distanceKm"`
	DistanceLabel string  `json:"distanceLabel"`
	DirectionsURL string  `json:"directionsUrl"`
}

type NearestResponse struct {
	APIResponse
	Location models.ResolvedLocation `json:"location"`
	Nearest  *NearestStation         `json:"nearest"`
	// Error is set when the location resolved but station data did not load
	Error string `json:"error,omitempty"`
}

type RefreshResponse struct {
	APIResponse
	Count int `json:"count"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewStationsResponse(stations []models.Station) *StationsResponse {
	if stations == nil {
		stations = []models.Station{}
	}
	return &StationsResponse{
		APIResponse: APIResponse{ResponseType: "stations"},
		Count:       len(stations),
		Stations:    stations,
	}
}

func NewNearestResponse(resolution *models.Resolution) *NearestResponse {
	resp := &NearestResponse{
		APIResponse: APIResponse{ResponseType: "nearest"},
		Location:    resolution.Location,
	}
	if n := resolution.Nearest; n != nil {
		resp.Nearest = &NearestStation{
			Station:       n.Station,
			DistanceKm:    n.DistanceKm,
			DistanceLabel: FormatDistance(n.DistanceKm),
			DirectionsURL: DirectionsURL(n.Station.Coordinates),
		}
	}
	return resp
}

func NewRefreshResponse(count int) *RefreshResponse {
	return &RefreshResponse{
		APIResponse: APIResponse{ResponseType: "refresh"},
		Count:       count,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	return JSON(body, http.StatusOK)
}

// JSON encodes body with an explicit status, for responses that carry a
// payload alongside a failure status.
func JSON(body interface{}, statusCode int) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    defaultHeaders(),
		Body:       string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    defaultHeaders(),
		Body:       string(body),
	}, nil
}

func defaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}
