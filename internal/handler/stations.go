package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/istanbulev/stationfinder/internal/api"
	"github.com/istanbulev/stationfinder/internal/models"
)

const stationsRoute = "/api/stations"

type StationsHandler struct {
	stations models.StationLoader
}

func NewStationsHandler(stations models.StationLoader) *StationsHandler {
	return &StationsHandler{
		stations: stations,
	}
}

func (h *StationsHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = withRequestLogger(ctx, request)

	stations, err := h.stations.Load(ctx)
	if err != nil {
		return errorResponse(ctx, stationsRoute, err)
	}

	return api.Success(api.NewStationsResponse(stations))
}
