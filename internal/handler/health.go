package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/istanbulev/stationfinder/internal/api"
	"github.com/istanbulev/stationfinder/internal/models"
)

type HealthResponse struct {
	api.APIResponse
	Status   string `json:"status"`
	Stations int    `json:"stations"`
}

// HealthHandler reports whether station data can be served
type HealthHandler struct {
	stations models.StationLoader
}

func NewHealthHandler(stations models.StationLoader) *HealthHandler {
	return &HealthHandler{
		stations: stations,
	}
}

func (h *HealthHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	ctx = withRequestLogger(ctx, request)

	resp := HealthResponse{APIResponse: api.APIResponse{ResponseType: "health"}}

	stations, err := h.stations.Load(ctx)
	if err != nil {
		resp.Status = "degraded"
		return api.JSON(resp, http.StatusServiceUnavailable)
	}

	resp.Status = "ok"
	resp.Stations = len(stations)
	return api.Success(resp)
}
