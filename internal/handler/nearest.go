package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/istanbulev/stationfinder/internal/api"
	"github.com/istanbulev/stationfinder/internal/location"
	"github.com/istanbulev/stationfinder/internal/models"
	"github.com/istanbulev/stationfinder/internal/report"
)

const nearestRoute = "/api/nearest"

// NearestResolver is implemented by locator.Service
type NearestResolver interface {
	Resolve(ctx context.Context, in location.Input) (*models.Resolution, error)
}

type NearestHandler struct {
	resolver NearestResolver
}

func NewNearestHandler(resolver NearestResolver) *NearestHandler {
	return &NearestHandler{
		resolver: resolver,
	}
}

func (h *NearestHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = withRequestLogger(ctx, request)

	in, err := api.ParseInput(request.QueryStringParameters)
	if err != nil {
		return errorResponse(ctx, nearestRoute, err)
	}

	resolution, err := h.resolver.Resolve(ctx, in)

	// The location still resolved, so the body carries it next to the error
	var unavailable *models.DataUnavailableError
	if errors.As(err, &unavailable) && resolution != nil {
		report.ReportError(err, map[string]string{"route": nearestRoute})
		resp := api.NewNearestResponse(resolution)
		resp.Error = "Station data is temporarily unavailable"
		return api.JSON(resp, http.StatusServiceUnavailable)
	}
	if err != nil {
		return errorResponse(ctx, nearestRoute, err)
	}

	return api.Success(api.NewNearestResponse(resolution))
}
